package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/args"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

var flagDevModeDryRun bool

var devModeCmd = &cobra.Command{
	Use:   "devmode [MODULE...]",
	Short: "Run GWT DevMode",
	Long: `Start GWT DevMode (com.google.gwt.dev.DevMode) for the given modules, or for
the modules configured in the dev_mode section.`,
	RunE: runE(runDevMode),
}

func init() {
	devModeCmd.Flags().BoolVar(&flagDevModeDryRun, "dry-run", false, "print the java command line instead of running it")
}

func runDevMode(cmd *cobra.Command, names []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if len(names) > 0 {
		s.cfg.DevMode.Modules = names
	}
	o, err := s.cfg.DevMode()
	if err != nil {
		return err
	}

	p := s.project(o.ExtraSourceDirs)
	if _, err := resolver.New(p, s.logger).Resolve(o.Modules); err != nil {
		return err
	}
	cp, err := s.classpath(p, false)
	if err != nil {
		return err
	}
	jvm, err := s.jvmArgs()
	if err != nil {
		return err
	}

	return s.launch(cmd.Context(), &launcher.Command{
		JVMArgs:   args.JVM(&o.Options, true, jvm...),
		Classpath: cp,
		MainClass: toolchain.DevModeClass,
		Args:      args.DevMode(o),
		MakeDirs:  s.warDirs(&o.Options),
	}, flagDevModeDryRun)
}
