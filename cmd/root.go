// Package cmd contains the CLI commands of gwt-launcher.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/issue"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
)

var (
	// Version is the release version (set via -ldflags).
	Version = "dev"

	flagProject string
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "gwt-launcher",
	Short: "Compile and run GWT applications",
	Long: TitleStyle.Render("gwt-launcher") + SubtitleStyle.Render(" - compile and run GWT applications") + `

gwt-launcher resolves the GWT modules of a project from their *.gwt.xml
descriptors, assembles the command line of the GWT tools and runs them
on a JVM.

Settings come from gwt.cue or gwt.toml in the project directory, then
GWT_* environment variables, then command-line arguments.

` + SubtitleStyle.Render("Examples:") + `
  gwt-launcher compile com.example.App       Compile a module to JavaScript
  gwt-launcher compile --watch               Recompile whenever a source changes
  gwt-launcher devmode                       Start DevMode for the configured modules
  gwt-launcher superdev                      Start the Super Dev Mode code server
  gwt-launcher modules tree                  Show the <inherits> tree
  gwt-launcher config show --format json     Print the effective configuration`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", ".", "project directory")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default is <project>/gwt.cue, then <project>/gwt.toml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(devModeCmd)
	rootCmd.AddCommand(superDevCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(depsCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command. A failed child process makes the launcher
// exit with the child's status.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gwt"})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig(ctx context.Context) (*config.Config, error) {
	return config.Load(ctx, config.LoadOptions{
		ProjectDir:     flagProject,
		ConfigFilePath: flagConfig,
	})
}

// describedError renders an error with the suggestions it carries.
type describedError struct {
	err error
}

func (e *describedError) Error() string { return issue.Describe(e.err) }

func (e *describedError) Unwrap() error { return e.err }

// runE adapts a command body: errors are rendered with their suggestions, and
// a child's exit status is passed through unchanged.
func runE(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := fn(cmd, args)
		if err == nil {
			return nil
		}
		cmd.SilenceUsage = true

		var exitErr *launcher.ExitError
		if errors.As(err, &exitErr) {
			return err
		}
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("interrupted")
		}
		return &describedError{err: err}
	}
}
