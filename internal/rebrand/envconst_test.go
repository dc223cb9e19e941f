// SPDX-License-Identifier: MPL-2.0

package rebrand

import "testing"

func TestRewriteEnvConstant(t *testing.T) {
	t.Parallel()

	src := `// Environment selection for compile-time flavor wiring.
const envDev = "dev";
const envUat = "uat";
const envProd = "prod";

const String env = envDev;
`

	out, matched := rewriteEnvConstant(src, "envProd")
	if !matched {
		t.Fatal("rewriteEnvConstant() did not match")
	}

	want := `// Environment selection for compile-time flavor wiring.
const envDev = "dev";
const envUat = "uat";
const envProd = "prod";

const String env = envProd;
`
	if out != want {
		t.Errorf("rewriteEnvConstant() = %q, want %q", out, want)
	}
}

func TestRewriteEnvConstantNoMatch(t *testing.T) {
	t.Parallel()

	src := "const String other = envDev;\n"
	out, matched := rewriteEnvConstant(src, "envUat")
	if matched {
		t.Error("rewriteEnvConstant() matched a non-declaration line")
	}
	if out != src {
		t.Error("rewriteEnvConstant() modified text without a match")
	}
}

func TestRewriteEnvConstantIdempotent(t *testing.T) {
	t.Parallel()

	src := "const String env = envUat;\n"
	once, _ := rewriteEnvConstant(src, "envUat")
	twice, _ := rewriteEnvConstant(once, "envUat")
	if once != twice || once != src {
		t.Errorf("rewriteEnvConstant() is not idempotent: %q -> %q", once, twice)
	}
}
