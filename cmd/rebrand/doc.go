// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI entry point for rebrand.
//
// The tool has a single fixed entry point: there are no subcommands and no
// domain flags. All parameters come from the rebrand document at the
// project root, so running the binary from a project root is the whole
// interface.
package cmd
