// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"strings"
	"testing"
)

const pbxprojFixture = `		83CBBA2E1A601CBA00E9B192 /* Debug */ = {
			buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.old.app;
			};
		};
		83CBBA2F1A601CBA00E9B192 /* Release */ = {
			buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.old.app;
			};
		};
		331C8088294A63A400263BE5 /* Debug */ = {
			buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.old.app.RunnerTests;
			};
		};
		331C8089294A63A400263BE5 /* Release */ = {
			buildSettings = {
				PRODUCT_BUNDLE_IDENTIFIER = com.old.app.RunnerUITests;
			};
		};
`

func TestRewriteBundleIdentifiers(t *testing.T) {
	t.Parallel()

	out, count := rewriteBundleIdentifiers(pbxprojFixture, "com.new.app")
	if count != 4 {
		t.Fatalf("count = %d, want 4", count)
	}

	if strings.Count(out, "PRODUCT_BUNDLE_IDENTIFIER = com.new.app;") != 2 {
		t.Error("primary-target identifiers not rewritten")
	}
	if !strings.Contains(out, "PRODUCT_BUNDLE_IDENTIFIER = com.new.app.RunnerTests;") {
		t.Error("RunnerTests suffix not preserved")
	}
	if !strings.Contains(out, "PRODUCT_BUNDLE_IDENTIFIER = com.new.app.RunnerUITests;") {
		t.Error("RunnerUITests suffix not preserved")
	}
	if strings.Contains(out, "com.old.app") {
		t.Error("old identifier still present")
	}
}

func TestRewriteBundleIdentifiersKeepsQuoting(t *testing.T) {
	t.Parallel()

	src := "\t\t\t\tPRODUCT_BUNDLE_IDENTIFIER = \"com.old.app\";\n"
	out, count := rewriteBundleIdentifiers(src, "com.new.app")
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}
	if out != "\t\t\t\tPRODUCT_BUNDLE_IDENTIFIER = \"com.new.app\";\n" {
		t.Errorf("out = %q", out)
	}
}

func TestRewriteBundleIdentifiersNoSuffix(t *testing.T) {
	t.Parallel()

	src := "\tPRODUCT_BUNDLE_IDENTIFIER = com.old.app;\n"
	out, _ := rewriteBundleIdentifiers(src, "com.new.app")
	if !strings.Contains(out, "PRODUCT_BUNDLE_IDENTIFIER = com.new.app;") {
		t.Errorf("identifier without suffix not replaced exactly: %q", out)
	}
}

func TestRewriteBundleIdentifiersIdempotent(t *testing.T) {
	t.Parallel()

	once, _ := rewriteBundleIdentifiers(pbxprojFixture, "com.new.app")
	twice, _ := rewriteBundleIdentifiers(once, "com.new.app")
	if once != twice {
		t.Error("descriptor rewrite is not idempotent")
	}
}
