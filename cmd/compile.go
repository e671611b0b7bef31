package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/args"
	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
	"github.com/StinkyLord/gwt-launcher/internal/project"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
	"github.com/StinkyLord/gwt-launcher/internal/watch"
)

var (
	flagDryRun bool
	flagWatch  bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [MODULE...]",
	Short: "Compile GWT modules to JavaScript",
	Long: `Run the GWT compiler on the given modules, or on the modules configured in
the compiler section (falling back to the top-level 'modules').

Examples:
  gwt-launcher compile
  gwt-launcher compile com.example.App --dry-run
  gwt-launcher compile --watch`,
	RunE: runE(runCompile),
}

func init() {
	compileCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the java command line instead of running it")
	compileCmd.Flags().BoolVarP(&flagWatch, "watch", "w", false, "recompile whenever a build input changes")
}

func runCompile(cmd *cobra.Command, names []string) error {
	if flagWatch && flagDryRun {
		return errors.New("--watch and --dry-run cannot be used together")
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	action := func(ctx context.Context) (*project.Project, error) {
		return compileAction(ctx, s, names, flagDryRun)
	}
	if !flagWatch {
		_, err := action(cmd.Context())
		return err
	}
	return watchAction(cmd.Context(), s, action)
}

// compileAction is one full compile: resolution, argument assembly and
// launch. It returns the project holding the registered inputs.
func compileAction(ctx context.Context, s *session, names []string, dryRun bool) (*project.Project, error) {
	if len(names) > 0 {
		s.cfg.Compiler.Modules = names
	}
	o, err := s.cfg.Compile()
	if err != nil {
		return nil, err
	}

	p := s.project(o.ExtraSourceDirs)
	if _, err := resolver.New(p, s.logger).Resolve(o.Modules); err != nil {
		return p, err
	}
	cp, err := s.classpath(p, false)
	if err != nil {
		return p, err
	}
	jvm, err := s.jvmArgs()
	if err != nil {
		return p, err
	}

	return p, s.launch(ctx, &launcher.Command{
		JVMArgs:   args.JVM(&o.Options, true, jvm...),
		Classpath: cp,
		MainClass: toolchain.CompilerClass,
		Args:      args.Compile(o),
		MakeDirs:  s.warDirs(&o.Options),
	}, dryRun)
}

// watchAction runs action once, then again whenever one of the inputs it
// registered changes. Failures are logged and do not stop the watch.
func watchAction(ctx context.Context, s *session, action func(context.Context) (*project.Project, error)) error {
	p, err := action(ctx)
	if err != nil {
		// Nothing to watch when resolution did not get far enough.
		if p == nil || len(p.Inputs()) == 0 {
			return err
		}
		s.logger.Error("build failed", "err", err)
	}

	roots := watch.Roots(append(p.Inputs(), p.SourceDirs()...))
	w, err := watch.New(watch.Config{
		Roots:  roots,
		Logger: s.logger,
		OnChange: func(ctx context.Context, _ []string) error {
			_, err := action(ctx)
			return err
		},
	})
	if err != nil {
		return err
	}
	s.logger.Info("watching for changes (Ctrl+C to stop)", "roots", len(roots))
	return w.Run(ctx)
}

// warDirs lists the war directory of a task, when one is set.
func (s *session) warDirs(o *config.Options) []string {
	if o.War == nil || *o.War == "" {
		return nil
	}
	return []string{s.cfg.Abs(*o.War)}
}
