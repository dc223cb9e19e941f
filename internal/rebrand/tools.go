// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrToolFailed is the sentinel error wrapped by ToolError.
var ErrToolFailed = errors.New("external tool failed")

type (
	// ToolRunner invokes an external build tool. Success is exit status
	// zero; any other status surfaces as a ToolError. The tool's output is
	// streamed, not captured, so diagnostics reach the user directly.
	ToolRunner interface {
		Run(ctx context.Context, name string, args ...string) error
	}

	// ToolError reports a tool that ran but exited non-zero.
	// It wraps ErrToolFailed for errors.Is() compatibility.
	ToolError struct {
		Tool     string
		Args     []string
		ExitCode int
	}

	// execToolRunner runs tools as host processes in a fixed working
	// directory with wired stdio.
	execToolRunner struct {
		dir    string
		stdout io.Writer
		stderr io.Writer
	}
)

// Error implements the error interface.
func (e *ToolError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Tool, e.ExitCode)
}

// Unwrap returns the sentinel error for errors.Is() chains.
func (e *ToolError) Unwrap() error { return ErrToolFailed }

// NewToolRunner creates a ToolRunner that spawns host processes rooted at
// dir, streaming their output to the given writers.
func NewToolRunner(dir string, stdout, stderr io.Writer) ToolRunner {
	return &execToolRunner{dir: dir, stdout: stdout, stderr: stderr}
}

// Run executes the tool and maps a non-zero exit into a ToolError.
func (r *execToolRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolError{Tool: name, Args: args, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to invoke %s: %w", name, err)
	}
	return nil
}
