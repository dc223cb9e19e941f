// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rebrand-cli/internal/config"
	"rebrand-cli/internal/rebrand"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// rootCmd is the single fixed entry point. There are no subcommands and
	// no domain flags: every parameter comes from the rebrand document.
	rootCmd = &cobra.Command{
		Use:   "rebrand",
		Short: "Propagate a new application identity across platform build files",
		Long: TitleStyle.Render("rebrand") + SubtitleStyle.Render(" - One config, one consistent app identity") + `

rebrand reads a declarative document (rebrand.yaml at the project root)
and propagates the application name, deployment flavor, package/bundle
identifier, version and build number across both platform trees:

  - project manifest (pubspec.yaml): name, default_env, version, icon path
  - compile-time env constant (lib/env/env.dart)
  - Android manifest: package attribute and display label
  - Gradle build script: applicationId and namespace
  - Android entry point: package declaration and directory relocation
  - string resources: display-name entry (created if absent)
  - iOS project descriptor: every bundle identifier, test suffixes kept

All edits are staged first and committed together; a document that fails
validation changes nothing. Afterwards the launcher-icon and dependency
tools are invoked (flutter pub run flutter_launcher_icons:main, flutter
pub get).

` + SubtitleStyle.Render("Usage:") + `
  cd /path/to/project   # the directory holding pubspec.yaml
  rebrand`,
		Args: cobra.NoArgs,
		RunE: runRebrand,
	}
)

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// runRebrand loads the document, runs the pipeline, and maps failures onto
// exit status 1 with rendered guidance.
func runRebrand(cc *cobra.Command, _ []string) error {
	projectRoot, err := os.Getwd()
	if err != nil {
		return fail(cc, fmt.Errorf("resolve working directory: %w", err))
	}

	cfg, err := config.Load(projectRoot)
	if err != nil {
		return fail(cc, err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	runner := rebrand.New(projectRoot, cfg, logger)
	if err := runner.Run(cc.Context()); err != nil {
		return fail(cc, err)
	}

	fmt.Fprintln(cc.OutOrStdout(),
		SuccessStyle.Render("✓")+" "+cfg.ApplicationName+" ("+string(cfg.PackageName)+") is ready")
	return nil
}

// fail renders the error for the user and converts it into exit status 1.
// The ExitError carries no message of its own so the error is not printed
// twice.
func fail(cc *cobra.Command, err error) error {
	renderServiceError(cc.ErrOrStderr(), classifyError(err))
	cc.SilenceUsage = true
	cc.SilenceErrors = true
	return &ExitError{Code: 1}
}
