// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"regexp"

	"rebrand-cli/pkg/dotpath"
)

var (
	manifestPackageRe = regexp.MustCompile(`package="[^"]*"`)
	manifestLabelRe   = regexp.MustCompile(`android:label="[^"]*"`)
)

// appNameResourceRef is the symbolic reference to the display-name entry of
// the string-resource table. The resource table is the single source of
// truth for the display name; the manifest only points at it.
const appNameResourceRef = "@string/app_name"

// spliceManifestPackage replaces the value of the root element's package
// attribute. Only the matched package="..." substring changes; every other
// attribute keeps its bytes and its position.
func spliceManifestPackage(text string, id dotpath.Identifier) (string, bool) {
	loc := manifestPackageRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + `package="` + string(id) + `"` + text[loc[1]:], true
}

// rewriteManifestLabel points the application label at the app_name string
// resource.
func rewriteManifestLabel(text string) (string, bool) {
	loc := manifestLabelRe.FindStringIndex(text)
	if loc == nil {
		return text, false
	}
	return text[:loc[0]] + `android:label="` + appNameResourceRef + `"` + text[loc[1]:], true
}

// stageAndroidManifest rewrites the platform manifest's package attribute
// and display label. A missing manifest is fatal for this component only:
// it is reported and the rest of the run continues.
func (r *Runner) stageAndroidManifest() error {
	path := r.abs(androidManifestPath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		r.log.Error("platform manifest not found, component skipped", "path", androidManifestPath)
		return nil
	}

	text := string(data)

	out, matched := spliceManifestPackage(text, r.cfg.PackageName)
	if !matched {
		r.log.Warn("package attribute not found in platform manifest", "path", androidManifestPath)
	}
	text = out

	out, matched = rewriteManifestLabel(text)
	if !matched {
		r.log.Warn("label attribute not found in platform manifest", "path", androidManifestPath)
	}
	text = out

	if text != string(data) {
		r.plan.StageEdit(path, []byte(text))
	}
	return nil
}
