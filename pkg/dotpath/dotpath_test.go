// SPDX-License-Identifier: MPL-2.0

package dotpath_test

import (
	"errors"
	"testing"

	"rebrand-cli/pkg/dotpath"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      dotpath.Identifier
		wantErr bool
	}{
		{name: "three segments", id: "com.acme.app", wantErr: false},
		{name: "single segment", id: "app", wantErr: false},
		{name: "empty", id: "", wantErr: true},
		{name: "leading dot", id: ".com.acme", wantErr: true},
		{name: "trailing dot", id: "com.acme.", wantErr: true},
		{name: "double dot", id: "com..acme", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.id.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate(%q) = nil, want error", tt.id)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate(%q) = %v, want nil", tt.id, err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, dotpath.ErrInvalidIdentifier) {
				t.Errorf("Validate(%q) error does not wrap ErrInvalidIdentifier", tt.id)
			}
		})
	}
}

func TestDir(t *testing.T) {
	t.Parallel()

	got := dotpath.Identifier("com.acme.app").Dir()
	if got != "com/acme/app" {
		t.Errorf("Dir() = %q, want %q", got, "com/acme/app")
	}
}

func TestFromDir(t *testing.T) {
	t.Parallel()

	got := dotpath.FromDir("com/acme/app")
	if got != "com.acme.app" {
		t.Errorf("FromDir() = %q, want %q", got, "com.acme.app")
	}

	if got := dotpath.FromDir("/com/acme/app/"); got != "com.acme.app" {
		t.Errorf("FromDir() with surrounding slashes = %q, want %q", got, "com.acme.app")
	}
}

// Round trip: for any valid identifier, FromDir(Dir(id)) must yield id back.
func TestRoundTrip(t *testing.T) {
	t.Parallel()

	ids := []dotpath.Identifier{
		"app",
		"com.acme",
		"com.acme.app",
		"io.example.some_app.deep.nested",
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			t.Fatalf("fixture %q is invalid: %v", id, err)
		}
		if got := dotpath.FromDir(id.Dir()); got != id {
			t.Errorf("FromDir(Dir(%q)) = %q, want original", id, got)
		}
	}
}

func TestSegments(t *testing.T) {
	t.Parallel()

	got := dotpath.Identifier("com.acme.app").Segments()
	want := []string{"com", "acme", "app"}
	if len(got) != len(want) {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Segments()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
