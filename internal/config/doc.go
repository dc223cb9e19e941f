// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the rebrand configuration document.
//
// The document lives at the project root as rebrand.yaml (JSON and TOML are
// accepted too; Viper resolves the format by extension). The decoded values
// are validated against a CUE schema (config_schema.cue) before anything
// else runs: all five identity fields must be non-empty and the flavor must
// be one of the recognized deployment flavors. A document that fails
// validation aborts the run before any file is touched.
package config
