// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"regexp"
	"strings"

	"rebrand-cli/pkg/dotpath"
)

// bundleIDRe matches one bundle-identifier assignment per build
// configuration or target; a project descriptor typically holds many.
// The value's quoting (bare or double-quoted) is captured and preserved.
var bundleIDRe = regexp.MustCompile(`(?m)^([ \t]*)PRODUCT_BUNDLE_IDENTIFIER = ("?)([A-Za-z0-9_.\-]+)("?);`)

// auxiliarySuffixes are the known auxiliary-target suffixes, in match
// order: the first suffix the old value ends with is carried over to the
// new identifier so test targets stay distinguishable from the primary.
var auxiliarySuffixes = []string{".RunnerUITests", ".RunnerTests"}

// rewriteBundleIdentifiers replaces every bundle-identifier assignment in
// the descriptor, re-appending a recognized auxiliary suffix of the old
// value onto the new identifier. Returns the patched text and the number
// of assignments rewritten.
func rewriteBundleIdentifiers(text string, newID dotpath.Identifier) (string, int) {
	count := 0
	out := bundleIDRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := bundleIDRe.FindStringSubmatch(match)
		indent, quote, old := sub[1], sub[2], sub[3]

		value := string(newID)
		for _, suffix := range auxiliarySuffixes {
			if strings.HasSuffix(old, suffix) {
				value += suffix
				break
			}
		}

		count++
		return indent + "PRODUCT_BUNDLE_IDENTIFIER = " + quote + value + quote + ";"
	})
	return out, count
}

// stageBundleDescriptor rewrites every bundle-identifier assignment in the
// iOS project descriptor. A missing descriptor is skipped with a warning.
func (r *Runner) stageBundleDescriptor() error {
	path := r.abs(bundleDescriptorPath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		r.log.Warn("project descriptor not found, skipping", "path", bundleDescriptorPath)
		return nil
	}

	out, count := rewriteBundleIdentifiers(string(data), r.cfg.PackageName)
	if count == 0 {
		r.log.Warn("no bundle-identifier assignments found in project descriptor", "path", bundleDescriptorPath)
		return nil
	}
	r.log.Debug("bundle identifiers rewritten", "path", bundleDescriptorPath, "count", count)

	if out != string(data) {
		r.plan.StageEdit(path, []byte(out))
	}
	return nil
}
