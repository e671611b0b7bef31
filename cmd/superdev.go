package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/args"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

var flagSuperDevDryRun bool

var superDevCmd = &cobra.Command{
	Use:   "superdev [MODULE...]",
	Short: "Run the Super Dev Mode code server",
	Long: `Start the GWT code server (com.google.gwt.dev.codeserver.CodeServer) for the
given modules, or for the modules configured in the super_dev section.
Requires GWT 2.5 or later.`,
	RunE: runE(runSuperDev),
}

func init() {
	superDevCmd.Flags().BoolVar(&flagSuperDevDryRun, "dry-run", false, "print the java command line instead of running it")
}

func runSuperDev(cmd *cobra.Command, names []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	if err := s.toolchain.RequireSuperDev(); err != nil {
		return err
	}
	if len(names) > 0 {
		s.cfg.SuperDev.Modules = names
	}
	o, err := s.cfg.SuperDev()
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

	// The code server keeps its own unit cache and writes no war.
	return s.launch(cmd.Context(), &launcher.Command{
		JVMArgs:   args.JVM(&o.Options, false, jvm...),
		Classpath: cp,
		MainClass: toolchain.CodeServerClass,
		Args:      args.SuperDev(o),
	}, flagSuperDevDryRun)
}
