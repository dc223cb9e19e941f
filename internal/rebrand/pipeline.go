// SPDX-License-Identifier: MPL-2.0

package rebrand

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"rebrand-cli/internal/config"

	"github.com/charmbracelet/log"
)

// Target artifact paths, relative to the project root.
const (
	pubspecPath          = "pubspec.yaml"
	envConstantPath      = "lib/env/env.dart"
	androidManifestPath  = "android/app/src/main/AndroidManifest.xml"
	buildScriptPath      = "android/app/build.gradle"
	stringResourcePath   = "android/app/src/main/res/values/strings.xml"
	bundleDescriptorPath = "ios/Runner.xcodeproj/project.pbxproj"
)

// entryPointRoots are the candidate platform-language source roots, in
// probe order; the first existing root wins.
var entryPointRoots = []string{
	"android/app/src/main/kotlin",
	"android/app/src/main/java",
}

// ErrProjectManifestNotFound is returned when the project root has no
// project manifest, i.e. the tool was not run from a project root.
var ErrProjectManifestNotFound = errors.New("project manifest not found")

type (
	// Runner sequences the rebrand pipeline: stage every edit against the
	// current tree, commit them all, then run the external platform tools.
	// A Runner is single-use; the Config it holds is immutable for the run.
	Runner struct {
		root  string
		cfg   *config.Config
		log   *log.Logger
		tools ToolRunner
		plan  *Plan
	}

	// Option configures a Runner.
	Option func(*Runner)
)

// WithToolRunner overrides the external tool runner. Tests use this to
// observe tool invocations without spawning processes.
func WithToolRunner(tools ToolRunner) Option {
	return func(r *Runner) {
		r.tools = tools
	}
}

// New creates a Runner for the project rooted at root. The config must
// already be validated.
func New(root string, cfg *config.Config, logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		root:  root,
		cfg:   cfg,
		log:   logger,
		tools: NewToolRunner(root, os.Stdout, os.Stderr),
		plan:  NewPlan(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// abs resolves a slash-form project-relative artifact path against the
// project root.
func (r *Runner) abs(rel string) string {
	return filepath.Join(r.root, filepath.FromSlash(rel))
}

// Run executes the full pipeline in its fixed order. Staging failures
// abort before any file is touched; commit and tool failures abort
// immediately with the staged state already on disk (re-running the
// pipeline is safe and converges).
func (r *Runner) Run(ctx context.Context) error {
	steps := []struct {
		name  string
		stage func() error
	}{
		{"environment constant", r.stageEnvConstant},
		{"project manifest", r.stagePubspec},
		{"platform manifest", r.stageAndroidManifest},
		{"build script", r.stageBuildScript},
		{"entry point", r.stageEntryPoint},
		{"string resources", r.stageStringResources},
		{"bundle descriptor", r.stageBundleDescriptor},
	}

	for _, step := range steps {
		if err := step.stage(); err != nil {
			return fmt.Errorf("stage %s: %w", step.name, err)
		}
		r.log.Info("staged", "step", step.name)
	}

	if err := r.plan.Commit(); err != nil {
		return fmt.Errorf("commit staged edits: %w", err)
	}
	r.log.Info("committed staged edits", "files", r.plan.Len())

	r.log.Info("generating launcher icons")
	if err := r.tools.Run(ctx, "flutter", "pub", "run", "flutter_launcher_icons:main"); err != nil {
		return err
	}

	r.log.Info("resolving dependencies")
	if err := r.tools.Run(ctx, "flutter", "pub", "get"); err != nil {
		return err
	}

	r.log.Info("rebrand complete",
		"name", r.cfg.ApplicationName,
		"package", r.cfg.PackageName,
		"flavor", r.cfg.Flavor,
		"version", r.cfg.Version+"+"+r.cfg.Build)
	return nil
}
