package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
	"github.com/StinkyLord/gwt-launcher/internal/project"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

// session is the state shared by one command invocation.
type session struct {
	cfg       *config.Config
	logger    *log.Logger
	toolchain *toolchain.Toolchain
	launcher  *launcher.Launcher
	out       io.Writer
}

func newSession(cmd *cobra.Command) (*session, error) {
	logger := newLogger()
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		logger.Debug("loaded configuration", "file", cfg.Source)
	}
	l := launcher.New(logger)
	l.Stdout = cmd.OutOrStdout()
	l.Stderr = cmd.ErrOrStderr()
	return &session{
		cfg:       cfg,
		logger:    logger,
		toolchain: toolchain.New(cfg.GwtVersion, cfg.Jakarta, logger),
		launcher:  l,
		out:       cmd.OutOrStdout(),
	}, nil
}

// project creates the project layout for a task using extraSources.
func (s *session) project(extraSources []string) *project.Project {
	return project.New(project.LayoutFrom(s.cfg, extraSources))
}

// compilerSourceDirs returns the extra source directories the compiler
// sees, so inspection commands scan what compile scans.
func (s *session) compilerSourceDirs() []string {
	return config.PickList(s.cfg.Compiler.ExtraSourceDirs, s.cfg.ExtraSourceDirs)
}

// classpath builds the launcher classpath and warns about SDK jars that are
// missing from it.
func (s *session) classpath(p *project.Project, withTests bool) ([]string, error) {
	cp, err := p.Classpath(withTests)
	if err != nil {
		return nil, fmt.Errorf("build classpath: %w", err)
	}
	for _, c := range s.toolchain.MissingRuntime(cp) {
		s.logger.Warn("GWT artifact not on the classpath", "artifact", c.String(), "jar", c.JarName())
	}
	return cp, nil
}

// jvmArgs splits the user's jvm_args setting.
func (s *session) jvmArgs() ([]string, error) {
	return launcher.SplitJVMArgs(s.cfg.JVMArgs)
}

// launch runs c, or prints its command line when dryRun is set.
func (s *session) launch(ctx context.Context, c *launcher.Command, dryRun bool) error {
	c.Dir = s.cfg.Dir
	if s.cfg.Java != "" {
		c.Java = s.cfg.Java
	}
	if dryRun {
		fmt.Fprintln(s.out, CmdStyle.Render(c.Line()))
		if len(c.MakeDirs) > 0 {
			fmt.Fprintln(s.out, SubtitleStyle.Render("would create: "+strings.Join(c.MakeDirs, ", ")))
		}
		return nil
	}
	return s.launcher.Run(ctx, c)
}
