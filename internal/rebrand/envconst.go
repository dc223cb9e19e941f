// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"fmt"
	"regexp"
)

// envConstantRe matches the single compile-time environment-selector
// declaration, whatever flavor it currently selects.
var envConstantRe = regexp.MustCompile(`(?m)^const String env = env(?:Dev|Uat|Prod);$`)

// rewriteEnvConstant replaces the right-hand side of the env constant
// declaration with the identifier for the active flavor. Returns the
// patched text and whether the declaration was found.
func rewriteEnvConstant(text, constant string) (string, bool) {
	loc := envConstantRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + "const String env = " + constant + ";" + text[loc[1]:], true
}

// stageEnvConstant rewrites the env constant declaration for the active
// flavor. A missing file or missing declaration aborts only this patcher.
func (r *Runner) stageEnvConstant() error {
	constant := r.cfg.Flavor.EnvConstant()
	if constant == "" {
		// Unreachable after boundary validation, kept so a lookup miss can
		// never silently select no environment.
		return fmt.Errorf("no env constant mapping for flavor %q", r.cfg.Flavor)
	}

	path := r.abs(envConstantPath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		r.log.Warn("env constant file not found, skipping", "path", envConstantPath)
		return nil
	}

	out, matched := rewriteEnvConstant(string(data), constant)
	if !matched {
		r.log.Warn("env constant declaration not found, skipping", "path", envConstantPath)
		return nil
	}
	if out != string(data) {
		r.plan.StageEdit(path, []byte(out))
	}
	return nil
}
