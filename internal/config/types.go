// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"rebrand-cli/pkg/dotpath"
)

const (
	// FlavorDev is the development deployment flavor.
	FlavorDev Flavor = "dev"
	// FlavorUat is the user-acceptance (staging) deployment flavor.
	FlavorUat Flavor = "uat"
	// FlavorProd is the production deployment flavor.
	FlavorProd Flavor = "prod"
)

var (
	// ErrInvalidFlavor is returned when a Flavor value is not recognized.
	ErrInvalidFlavor = errors.New("invalid flavor")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid rebrand config")
)

type (
	// Flavor is a named deployment variant of the application. It is a
	// closed set: unrecognized input is rejected at the loading boundary
	// rather than mapped to a sentinel that would fail a later lookup.
	Flavor string

	// InvalidFlavorError is returned when a Flavor value is not recognized.
	// It wraps ErrInvalidFlavor for errors.Is() compatibility.
	InvalidFlavorError struct {
		Value Flavor
	}

	// Config is the typed representation of the rebrand document. All five
	// fields must be non-empty before any mutation begins.
	Config struct {
		// ApplicationName is the human-readable display name (e.g. "Acme App").
		ApplicationName string `json:"application_name"`
		// Flavor selects the deployment variant.
		Flavor Flavor `json:"flavor"`
		// PackageName is the reverse-DNS identifier (e.g. "com.acme.app").
		PackageName dotpath.Identifier `json:"packageName"`
		// Version is the dotted numeric version (e.g. "1.2.3").
		Version string `json:"version"`
		// Build is the numeric build counter.
		Build string `json:"build"`
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidConfigError struct {
		FieldErrors []error
	}
)

// Error implements the error interface.
func (e *InvalidFlavorError) Error() string {
	return fmt.Sprintf("invalid flavor %q (must be one of: dev, uat, prod)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() chains.
func (e *InvalidFlavorError) Unwrap() error { return ErrInvalidFlavor }

// Error implements the error interface.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid rebrand config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel error for errors.Is() chains.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// Validate checks that the flavor is a member of the closed set.
func (f Flavor) Validate() error {
	switch f {
	case FlavorDev, FlavorUat, FlavorProd:
		return nil
	default:
		return &InvalidFlavorError{Value: f}
	}
}

// EnvConstant returns the environment-selector identifier written into the
// compile-time env constant declaration (e.g. "envDev").
func (f Flavor) EnvConstant() string {
	switch f {
	case FlavorDev:
		return "envDev"
	case FlavorUat:
		return "envUat"
	case FlavorProd:
		return "envProd"
	default:
		return ""
	}
}

// IconPath returns the flavor-keyed launcher icon asset path used for the
// icon-configuration block of the project manifest.
func (f Flavor) IconPath() string {
	return fmt.Sprintf("assets/launcher/ic_launcher_%s.png", f)
}

// ProjectName derives the platform-safe project token from the application
// display name: lowercased, spaces collapsed to underscores.
func (c *Config) ProjectName() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(c.ApplicationName)), " ", "_")
}

// Validate checks field-level invariants that the schema cannot express
// (identifier segment shape) plus a defense pass over the schema's own
// guarantees, so a Config constructed in code is held to the same bar as
// one decoded from a document.
func (c *Config) Validate() error {
	var fieldErrs []error

	if strings.TrimSpace(c.ApplicationName) == "" {
		fieldErrs = append(fieldErrs, errors.New("application_name must not be empty"))
	}
	if err := c.Flavor.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if err := c.PackageName.Validate(); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if strings.TrimSpace(c.Version) == "" {
		fieldErrs = append(fieldErrs, errors.New("version must not be empty"))
	}
	if strings.TrimSpace(c.Build) == "" {
		fieldErrs = append(fieldErrs, errors.New("build must not be empty"))
	}

	if len(fieldErrs) > 0 {
		return &InvalidConfigError{FieldErrors: fieldErrs}
	}
	return nil
}
