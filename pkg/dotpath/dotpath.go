// SPDX-License-Identifier: MPL-2.0

// Package dotpath models reverse-DNS identifiers (e.g. "com.acme.app") and
// their directory-path form (e.g. "com/acme/app"). The two representations
// are a lossless bijection; every conversion helper in this package keeps it
// that way. Paths use forward slashes; callers that touch the filesystem
// convert with filepath.FromSlash.
package dotpath

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier is the sentinel error wrapped by InvalidIdentifierError.
var ErrInvalidIdentifier = errors.New("invalid package identifier")

type (
	// Identifier is a dot-separated reverse-DNS package identifier.
	// A valid Identifier has at least one segment and no empty segments.
	Identifier string

	// InvalidIdentifierError is returned when an Identifier is empty or has
	// an empty segment. It wraps ErrInvalidIdentifier for errors.Is().
	InvalidIdentifierError struct {
		Value Identifier
	}
)

// Error implements the error interface.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid package identifier %q: segments must be non-empty", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() chains.
func (e *InvalidIdentifierError) Unwrap() error { return ErrInvalidIdentifier }

// Validate checks that the identifier has at least one segment and that no
// segment is empty.
func (id Identifier) Validate() error {
	if id == "" {
		return &InvalidIdentifierError{Value: id}
	}
	for _, seg := range strings.Split(string(id), ".") {
		if seg == "" {
			return &InvalidIdentifierError{Value: id}
		}
	}
	return nil
}

// Segments returns the dot-separated segments of the identifier.
func (id Identifier) Segments() []string {
	return strings.Split(string(id), ".")
}

// Dir returns the slash-separated directory path for the identifier
// ("a.b.c" -> "a/b/c"). The identifier should be validated first; Dir does
// not re-check segments.
func (id Identifier) Dir() string {
	return strings.ReplaceAll(string(id), ".", "/")
}

// FromDir is the inverse of Dir ("a/b/c" -> "a.b.c"). Leading and trailing
// slashes are trimmed so that FromDir(Dir(id)) == id for any valid id.
func FromDir(dir string) Identifier {
	trimmed := strings.Trim(dir, "/")
	return Identifier(strings.ReplaceAll(trimmed, "/", "."))
}
