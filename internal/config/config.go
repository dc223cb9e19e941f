// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"rebrand-cli/internal/issue"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the rebrand document (without extension).
	ConfigFileName = "rebrand"

	// schemaPath is the root definition of the embedded schema.
	schemaPath = "#Rebrand"
)

//go:embed config_schema.cue
var configSchema string

// Load reads the rebrand document from the project root and validates it
// against the embedded CUE schema. Missing file, missing key, or an empty
// or malformed value are all fatal here, before any mutation is staged.
func Load(projectRoot string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.AddConfigPath(projectRoot)

	if err := v.ReadInConfig(); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("load rebrand config").
			WithResource(filepath.Join(projectRoot, ConfigFileName+".yaml")).
			WithSuggestion("Create a rebrand.yaml in the project root").
			WithSuggestion("Required keys: application_name, flavor, packageName, version, build").
			Wrap(err).
			BuildError()
	}

	// Rebuild the document with its canonical key spelling. Viper lowercases
	// keys internally (lookups stay case-insensitive), so the raw settings
	// map cannot be handed to the schema as-is.
	doc := map[string]string{
		"application_name": v.GetString("application_name"),
		"flavor":           v.GetString("flavor"),
		"packageName":      v.GetString("packageName"),
		"version":          v.GetString("version"),
		"build":            v.GetString("build"),
	}

	cfg, err := validateAndDecode(doc, v.ConfigFileUsed())
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateAndDecode unifies the document with the embedded schema, validates
// it as fully concrete, and decodes the result into a Config.
func validateAndDecode(doc map[string]string, filename string) (*Config, error) {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(configSchema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile config schema: %w", schemaValue.Err())
	}
	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	docValue := ctx.Encode(doc)
	if docValue.Err() != nil {
		return nil, fmt.Errorf("encode rebrand config: %w", docValue.Err())
	}

	unified := schemaRoot.Unify(docValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, issue.NewErrorContext().
			WithOperation("validate rebrand config").
			WithResource(filename).
			WithSuggestion("All five keys must be present and non-empty").
			WithSuggestion("flavor must be one of: dev, uat, prod").
			Wrap(err).
			BuildError()
	}

	var cfg Config
	if err := unified.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode rebrand config: %w", err)
	}
	return &cfg, nil
}
