// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"regexp"
	"strings"
)

var (
	pubspecNameRe = regexp.MustCompile(`(?m)^name:[ \t]*.*$`)
	pubspecEnvRe  = regexp.MustCompile(`(?m)^([ \t]*)default_env:[ \t]*.*$`)
	// pubspecVersionRe is strict: only a major.minor.patch value with an
	// optional +build is rewritten. Anything else is left untouched.
	pubspecVersionRe = regexp.MustCompile(`(?m)^version:[ \t]*\d+\.\d+\.\d+(?:\+\d+)?[ \t]*$`)
)

// iconBlockKey opens the icon-configuration block of the project manifest.
const iconBlockKey = "flutter_launcher_icons:"

// rewritePubspecName replaces the top-level name field value.
func rewritePubspecName(text, project string) (string, bool) {
	loc := pubspecNameRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + "name: " + project + text[loc[1]:], true
}

// rewritePubspecEnv replaces the default_env field value, preserving the
// field's indentation.
func rewritePubspecEnv(text, flavor string) (string, bool) {
	m := pubspecEnvRe.FindStringSubmatchIndex(text)
	if m == nil {
		return text, false
	}
	indent := text[m[2]:m[3]]
	return text[:m[0]] + indent + "default_env: " + flavor + text[m[1]:], true
}

// rewritePubspecVersion replaces the composite version field. A current
// value that does not match the strict shape is a silent no-op.
func rewritePubspecVersion(text, version, build string) (string, bool) {
	loc := pubspecVersionRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + "version: " + version + "+" + build + text[loc[1]:], true
}

// rewriteIconPath replaces the first image_path entry inside the
// icon-configuration block with the flavor-keyed icon asset. The scan ends
// immediately after the first replacement; additional icon declarations are
// not handled.
func rewriteIconPath(text, iconPath string) (string, bool) {
	lines := strings.Split(text, "\n")
	inBlock := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !inBlock {
			if trimmed == iconBlockKey {
				inBlock = true
			}
			continue
		}
		// The block ends at the first non-indented, non-empty line.
		if trimmed != "" && !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			break
		}
		if strings.HasPrefix(trimmed, "image_path:") {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			lines[i] = indent + `image_path: "` + iconPath + `"`
			return strings.Join(lines, "\n"), true
		}
	}
	return text, false
}

// stagePubspec rewrites the project manifest's name, default_env and
// version fields plus the icon-configuration image path. A missing
// manifest means this is not the project root at all, which is fatal.
func (r *Runner) stagePubspec() error {
	path := r.abs(pubspecPath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		return ErrProjectManifestNotFound
	}

	text := string(data)

	out, matched := rewritePubspecName(text, r.cfg.ProjectName())
	if !matched {
		r.log.Warn("name field not found in project manifest", "path", pubspecPath)
	}
	text = out

	out, matched = rewritePubspecEnv(text, string(r.cfg.Flavor))
	if !matched {
		r.log.Warn("default_env field not found in project manifest", "path", pubspecPath)
	}
	text = out

	out, matched = rewritePubspecVersion(text, r.cfg.Version, r.cfg.Build)
	if !matched {
		r.log.Debug("version field absent or not in major.minor.patch form, left unmodified", "path", pubspecPath)
	}
	text = out

	out, matched = rewriteIconPath(text, r.cfg.Flavor.IconPath())
	if !matched {
		r.log.Warn("icon configuration block has no image_path entry", "path", pubspecPath)
	}
	text = out

	if text != string(data) {
		r.plan.StageEdit(path, []byte(text))
	}
	return nil
}
