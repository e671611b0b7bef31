package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/output"
	"github.com/StinkyLord/gwt-launcher/internal/toolchain"
)

var flagDepsJSON bool

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Print the GWT SDK artifacts the project needs",
	Long: `Print the Maven coordinates of the GWT SDK artifacts for the configured
gwt_version, and whether a matching jar is on the configured classpath.`,
	Args: cobra.NoArgs,
	RunE: runE(runDeps),
}

func init() {
	depsCmd.Flags().BoolVar(&flagDepsJSON, "json", false, "print JSON")
}

func runDeps(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	coords := s.toolchain.Coordinates()
	if flagDepsJSON {
		return output.WriteCoordinates(s.out, coords)
	}

	present := map[string]bool{}
	cp, err := s.project(s.compilerSourceDirs()).Classpath(false)
	if err != nil {
		s.logger.Warn("cannot build classpath", "err", err)
	}
	for _, entry := range cp {
		if a := toolchain.MatchArtifact(entry); a != nil {
			present[a.Name] = true
		}
	}

	fmt.Fprintln(s.out, TitleStyle.Render("GWT "+s.toolchain.Version.String()))
	for _, c := range coords {
		mark := WarningStyle.Render("missing")
		if present[c.Artifact] {
			mark = SuccessStyle.Render("on classpath")
		}
		fmt.Fprintf(s.out, "  %s  %s\n", CmdStyle.Render(c.String()), mark)
	}
	return nil
}
