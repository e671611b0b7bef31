package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/args"
	"github.com/StinkyLord/gwt-launcher/internal/issue"
	"github.com/StinkyLord/gwt-launcher/internal/launcher"
)

var flagTestDryRun bool

var testCmd = &cobra.Command{
	Use:   "test [CLASS...]",
	Short: "Run GWT tests",
	Long: `Run GWTTestCase classes through the configured test runner
(org.junit.runner.JUnitCore by default). The GWT settings of the gwt_test
section are handed to the tests through the gwt.args system property.`,
	RunE: runE(runTest),
}

func init() {
	testCmd.Flags().BoolVar(&flagTestDryRun, "dry-run", false, "print the java command line instead of running it")
}

func runTest(cmd *cobra.Command, classes []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	o := s.cfg.Test()
	if len(classes) > 0 {
		o.Classes = classes
	}
	if len(o.Classes) == 0 {
		return issue.New("run GWT tests").
			WithSuggestion("Set 'classes' in the gwt_test section").
			WithSuggestion("Or pass test class names on the command line").
			Wrapf("no test classes given")
	}

	p := s.project(o.ExtraSourceDirs)
	cp, err := s.classpath(p, true)
	if err != nil {
		return err
	}
	jvm, err := s.jvmArgs()
	if err != nil {
		return err
	}

	return s.launch(cmd.Context(), &launcher.Command{
		JVMArgs:   args.TestJVM(o, jvm...),
		Classpath: cp,
		MainClass: o.Runner,
		Args:      o.Classes,
		MakeDirs:  args.TestDirs(o),
	}, flagTestDryRun)
}
