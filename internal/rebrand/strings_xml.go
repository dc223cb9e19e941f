// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"regexp"
	"strings"
)

var (
	appNameEntryRe = regexp.MustCompile(`(?m)(<string name="app_name">)[^<]*(</string>)`)

	xmlEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
	)
)

const resourcesClosingTag = "</resources>"

// minimalStringsXML is the table written when no string-resource file
// exists yet: a well-formed document holding only the display-name entry.
func minimalStringsXML(name string) string {
	return `<?xml version="1.0" encoding="utf-8"?>
<resources>
    <string name="app_name">` + xmlEscaper.Replace(name) + `</string>
` + resourcesClosingTag + "\n"
}

// upsertAppName guarantees a single up-to-date display-name entry in an
// existing table: an existing entry is replaced in place, a missing entry
// is inserted immediately before the closing tag. Re-running with the same
// name yields byte-identical output.
func upsertAppName(text, name string) (string, bool) {
	escaped := xmlEscaper.Replace(name)

	if m := appNameEntryRe.FindStringSubmatchIndex(text); m != nil {
		return text[:m[3]] + escaped + text[m[4]:], true
	}

	idx := strings.LastIndex(text, resourcesClosingTag)
	if idx < 0 {
		return text, false
	}
	entry := `    <string name="app_name">` + escaped + "</string>\n"
	return text[:idx] + entry + text[idx:], true
}

// stageStringResources guarantees the display-name entry exists in the
// string-resource table, creating the table (and its directories) when it
// is absent.
func (r *Runner) stageStringResources() error {
	path := r.abs(stringResourcePath)
	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}

	if !ok {
		r.plan.StageCreate(path, []byte(minimalStringsXML(r.cfg.ApplicationName)))
		return nil
	}

	out, ok := upsertAppName(string(data), r.cfg.ApplicationName)
	if !ok {
		r.log.Warn("string-resource table has no closing tag, skipping", "path", stringResourcePath)
		return nil
	}
	if out != string(data) {
		r.plan.StageEdit(path, []byte(out))
	}
	return nil
}
