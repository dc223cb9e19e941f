// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"rebrand-cli/pkg/dotpath"
)

// packageDeclRe matches the entry point's package declaration line. Kotlin
// omits the trailing semicolon, Java requires it; the captured semicolon is
// preserved so the rewritten line keeps the language's own form.
var packageDeclRe = regexp.MustCompile(`(?m)^package[ \t]+([A-Za-z_][A-Za-z0-9_]*(?:\.[A-Za-z_][A-Za-z0-9_]*)*)[ \t]*(;?)[ \t]*$`)

// entryPointName matches the platform entry-point file, one extension per
// supported platform language.
func isEntryPointName(name string) bool {
	return name == "MainActivity.kt" || name == "MainActivity.java"
}

// findEntryPoint walks root deterministically (lexical order) and returns
// the first file whose name matches the entry-point pattern, or "" when
// none exists.
func findEntryPoint(root string) (string, error) {
	found := ""
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && isEntryPointName(d.Name()) {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return found, nil
}

// stageEntryPoint locates the platform entry-point source file, rewrites
// its package declaration, and stages a move to the directory implied by
// the new identifier. The emptied old directories are pruned at commit,
// bounded by the language root. Any missing precondition (no root, no
// entry point, no package declaration) skips this component and leaves the
// entry point untouched.
func (r *Runner) stageEntryPoint() error {
	root := ""
	for _, candidate := range entryPointRoots {
		abs := r.abs(candidate)
		if _, ok, err := statDir(abs); err != nil {
			return err
		} else if ok {
			root = abs
			break
		}
	}
	if root == "" {
		r.log.Warn("no platform source root found, skipping entry point")
		return nil
	}

	path, err := findEntryPoint(root)
	if err != nil {
		return err
	}
	if path == "" {
		r.log.Warn("entry-point source file not found, skipping", "root", root)
		return nil
	}

	data, ok, err := readArtifact(path)
	if err != nil {
		return err
	}
	if !ok {
		r.log.Warn("entry-point source file vanished, skipping", "path", path)
		return nil
	}
	text := string(data)

	m := packageDeclRe.FindStringSubmatchIndex(text)
	if m == nil {
		r.log.Warn("package declaration not found in entry point, skipping", "path", path)
		return nil
	}

	oldID := dotpath.Identifier(text[m[2]:m[3]])
	newID := r.cfg.PackageName
	semi := text[m[4]:m[5]]
	patched := text[:m[0]] + "package " + string(newID) + semi + text[m[1]:]

	newPath := filepath.Join(root, filepath.FromSlash(newID.Dir()), filepath.Base(path))

	if newPath == path {
		if patched != text {
			r.plan.StageEdit(path, []byte(patched))
		}
		return nil
	}

	r.log.Debug("relocating entry point",
		"from", oldID, "to", newID, "file", filepath.Base(path))
	r.plan.StageMove(path, newPath, []byte(patched), root)
	return nil
}

// statDir reports whether path exists as a directory.
func statDir(path string) (string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, false, nil
		}
		return path, false, err
	}
	return path, info.IsDir(), nil
}
