// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// This package defines error types that include remediation steps and a small
// catalog of Markdown-formatted guidance for the fatal failure classes of a
// rebrand run, improving the user experience when errors occur.
package issue
