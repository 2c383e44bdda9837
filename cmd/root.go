// Package cmd contains the prae command-line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"prae/pkg/config"
	"prae/pkg/core"
	"prae/pkg/progress"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *log.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "prae",
		Short: "Pyongyang Racer Asset Extractor",
		Long: TitleStyle.Render("prae") + SubtitleStyle.Render(" - Pyongyang Racer Asset Extractor") + `

A tool to extract and compress 1.dat and common.dat archives.

` + SubtitleStyle.Render("Examples:") + `
  prae list common.dat          List the files inside an archive
  prae unzip common.dat         Extract common.dat into ./common
  prae zip common               Compress ./common into common.dat`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "log every processed file")
	root.PersistentFlags().BoolP("quiet", "q", false, "only print errors")
	root.PersistentFlags().String("codec", string(core.DefaultCodec), "archive compression codec (deflate or lz4)")
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (toml, yaml or json)")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newZipCmd(a))
	root.AddCommand(newUnzipCmd(a))
	return root
}

// setup loads configuration and sets up logging for the running command
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.cfgFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	a.cfg = cfg

	a.logger = core.NewLogger(cmd.ErrOrStderr())
	switch {
	case cfg.Verbose:
		a.logger.SetLevel(log.DebugLevel)
	case cfg.Quiet:
		a.logger.SetLevel(log.ErrorLevel)
	}
	return nil
}

// options returns the core options for the current configuration.
// header is the progress line printed before the first file; empty
// disables progress output.
func (a *app) options(cmd *cobra.Command, header string) []core.Option {
	opts := []core.Option{
		core.WithLogger(a.logger),
		core.WithCodec(a.cfg.CodecValue()),
	}
	if header != "" && !a.cfg.Quiet {
		opts = append(opts, core.WithProgress(progress.NewWithHeader(cmd.OutOrStdout(), header)))
	}
	return opts
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// Execute runs the CLI and exits the process with the matching status code.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(getVersionString()),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(ExitFailure)
	}
}
