// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "rebrand.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}
}

func TestLoadValidDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `application_name: "Acme App"
flavor: uat
packageName: com.acme.app
version: "1.2.3"
build: "45"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ApplicationName != "Acme App" {
		t.Errorf("ApplicationName = %q", cfg.ApplicationName)
	}
	if cfg.Flavor != FlavorUat {
		t.Errorf("Flavor = %q, want uat", cfg.Flavor)
	}
	if cfg.PackageName != "com.acme.app" {
		t.Errorf("PackageName = %q", cfg.PackageName)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q", cfg.Version)
	}
	if cfg.Build != "45" {
		t.Errorf("Build = %q", cfg.Build)
	}
}

func TestLoadNumericScalarsCoerced(t *testing.T) {
	t.Parallel()

	// YAML authors routinely leave version and build unquoted; the loader
	// must accept the scalar forms.
	dir := t.TempDir()
	writeConfig(t, dir, `application_name: Acme
flavor: dev
packageName: com.acme.app
version: "1.0.0"
build: 7
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Build != "7" {
		t.Errorf("Build = %q, want %q", cfg.Build, "7")
	}
}

func TestLoadMissingDocument(t *testing.T) {
	t.Parallel()

	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() on empty dir = nil, want error")
	}
}

func TestLoadMissingField(t *testing.T) {
	t.Parallel()

	// build is absent: the document must be rejected outright.
	dir := t.TempDir()
	writeConfig(t, dir, `application_name: Acme
flavor: dev
packageName: com.acme.app
version: "1.0.0"
`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() with missing build = nil, want error")
	}
}

func TestLoadRejectsUnknownFlavor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `application_name: Acme
flavor: staging
packageName: com.acme.app
version: "1.0.0"
build: "1"
`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() with unknown flavor = nil, want error")
	}
}

func TestLoadRejectsEmptyValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `application_name: ""
flavor: dev
packageName: com.acme.app
version: "1.0.0"
build: "1"
`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() with empty application_name = nil, want error")
	}
}

func TestLoadRejectsMalformedVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `application_name: Acme
flavor: dev
packageName: com.acme.app
version: "not-a-version"
build: "1"
`)

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() with malformed version = nil, want error")
	}
}
