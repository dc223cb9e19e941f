// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

type (
	// Plan accumulates staged filesystem operations. Patchers append to it
	// during staging; Commit applies every operation in staged order. A Plan
	// is single-use and not safe for concurrent use (the pipeline is fully
	// synchronous).
	Plan struct {
		ops []planOp
	}

	planOp interface {
		apply() error
	}

	// editOp overwrites an existing file. The file's permissions are kept
	// because the file already exists when the write happens.
	editOp struct {
		path    string
		content []byte
	}

	// createOp writes a new file, creating parent directories as needed.
	createOp struct {
		path    string
		content []byte
	}

	// moveOp writes content to a new location, removes the old file, and
	// prunes ancestor directories of the old location that the move left
	// empty. The prune walk never ascends to or above pruneRoot.
	moveOp struct {
		oldPath   string
		newPath   string
		content   []byte
		pruneRoot string
	}
)

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// StageEdit stages an overwrite of an existing file.
func (p *Plan) StageEdit(path string, content []byte) {
	p.ops = append(p.ops, &editOp{path: path, content: content})
}

// StageCreate stages creation of a new file including parent directories.
func (p *Plan) StageCreate(path string, content []byte) {
	p.ops = append(p.ops, &createOp{path: path, content: content})
}

// StageMove stages a content-carrying file move with bounded pruning of the
// emptied source directories.
func (p *Plan) StageMove(oldPath, newPath string, content []byte, pruneRoot string) {
	p.ops = append(p.ops, &moveOp{oldPath: oldPath, newPath: newPath, content: content, pruneRoot: pruneRoot})
}

// Len returns the number of staged operations.
func (p *Plan) Len() int {
	return len(p.ops)
}

// Commit applies all staged operations in order. The first failing
// operation aborts the commit; operations already applied stay applied
// (external tools and re-runs are expected to be idempotent).
func (p *Plan) Commit() error {
	for _, op := range p.ops {
		if err := op.apply(); err != nil {
			return err
		}
	}
	return nil
}

func (o *editOp) apply() error {
	if err := os.WriteFile(o.path, o.content, 0o644); err != nil {
		return fmt.Errorf("rewrite %s: %w", o.path, err)
	}
	return nil
}

func (o *createOp) apply() error {
	if err := os.MkdirAll(filepath.Dir(o.path), 0o755); err != nil {
		return fmt.Errorf("create parent directories for %s: %w", o.path, err)
	}
	if err := os.WriteFile(o.path, o.content, 0o644); err != nil {
		return fmt.Errorf("create %s: %w", o.path, err)
	}
	return nil
}

func (o *moveOp) apply() error {
	if err := os.MkdirAll(filepath.Dir(o.newPath), 0o755); err != nil {
		return fmt.Errorf("create target directory for %s: %w", o.newPath, err)
	}
	if err := os.WriteFile(o.newPath, o.content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", o.newPath, err)
	}
	if err := os.Remove(o.oldPath); err != nil {
		return fmt.Errorf("remove %s: %w", o.oldPath, err)
	}
	return pruneEmptyDirs(filepath.Dir(o.oldPath), o.pruneRoot)
}

// pruneEmptyDirs removes dir and then its ancestors while they are empty,
// stopping at the first non-empty directory. The walk is bounded: it never
// removes root itself or anything outside it.
func pruneEmptyDirs(dir, root string) error {
	for {
		rel, err := filepath.Rel(root, dir)
		if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", dir, err)
		}
		if len(entries) > 0 {
			return nil
		}
		if err := os.Remove(dir); err != nil {
			return fmt.Errorf("prune %s: %w", dir, err)
		}
		dir = filepath.Dir(dir)
	}
}

// readArtifact loads a target artifact for staging. A missing file is not
// an error: the caller decides whether absence is a skip or a failure.
func readArtifact(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	return data, true, nil
}
