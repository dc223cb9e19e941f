// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"regexp"

	"rebrand-cli/pkg/dotpath"
)

var (
	// applicationIDRe tolerates the Groovy and Kotlin DSL spellings: with or
	// without '=', single or double quotes.
	applicationIDRe = regexp.MustCompile(`applicationId[ \t]*=?[ \t]*["']([^"']+)["']`)
	namespaceRe     = regexp.MustCompile(`(?m)^([ \t]*)namespace[ \t]*=?[ \t]*["']([^"']+)["'][ \t]*$`)
)

// rewriteApplicationID normalizes the application identifier declaration to
// the canonical double-quoted form with the new identifier.
func rewriteApplicationID(text string, id dotpath.Identifier) (string, bool) {
	loc := applicationIDRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + `applicationId "` + string(id) + `"` + text[loc[1]:], true
}

// rewriteNamespace rewrites the line-anchored namespace declaration to the
// canonical double-quoted form, preserving indentation.
func rewriteNamespace(text string, id dotpath.Identifier) (string, bool) {
	m := namespaceRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, false
	}
	indent := text[m[2]:m[3]]
	return text[:m[0]] + indent + `namespace "` + string(id) + `"` + text[m[1]:], true
}

// stageBuildScript rewrites the build script's application identifier and
// namespace declarations. The two fields are independent: one matching and
// one missing is partial success, reported per field, and the text is
// staged as a single file update.
func (r *Runner) stageBuildScript() error {
	path := r.abs(buildScriptPath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		r.log.Warn("build script not found, skipping", "path", buildScriptPath)
		return nil
	}

	text := string(data)

	out, matched := rewriteApplicationID(text, r.cfg.PackageName)
	if matched {
		r.log.Debug("application identifier rewritten", "path", buildScriptPath)
	} else {
		r.log.Warn("application identifier declaration not found, field skipped", "path", buildScriptPath)
	}
	text = out

	out, matched = rewriteNamespace(text, r.cfg.PackageName)
	if matched {
		r.log.Debug("namespace rewritten", "path", buildScriptPath)
	} else {
		r.log.Warn("namespace declaration not found, field skipped", "path", buildScriptPath)
	}
	text = out

	if text != string(data) {
		r.plan.StageEdit(path, []byte(text))
	}
	return nil
}
