package cmd

import (
	"github.com/spf13/cobra"

	"github.com/StinkyLord/gwt-launcher/internal/config"
	"github.com/StinkyLord/gwt-launcher/internal/output"
	"github.com/StinkyLord/gwt-launcher/internal/resolver"
)

var flagJSON bool

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Inspect the GWT modules of the project",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every module found in the source directories",
	Args:  cobra.NoArgs,
	RunE:  runE(runModulesList),
}

var modulesTreeCmd = &cobra.Command{
	Use:   "tree [MODULE...]",
	Short: "Show the <inherits> tree of modules",
	Long: `Show the <inherits> tree of the given modules, or of the configured ones.
Modules that are not found in the source directories are shown as external:
they are expected to come from a jar on the classpath.`,
	RunE: runE(runModulesTree),
}

var modulesSourcesCmd = &cobra.Command{
	Use:   "sources [MODULE...]",
	Short: "Show the source paths of modules and the build inputs they register",
	RunE:  runE(runModulesSources),
}

func init() {
	modulesCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print JSON")

	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesTreeCmd)
	modulesCmd.AddCommand(modulesSourcesCmd)
}

// requestedModules returns names, or the compiler's effective module list.
func requestedModules(cfg *config.Config, names []string) []string {
	if len(names) > 0 {
		return names
	}
	return config.PickList(cfg.Compiler.Modules, cfg.Modules)
}

func runModulesList(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	p := s.project(s.compilerSourceDirs())
	mods, err := resolver.New(p, s.logger).Modules()
	if err != nil {
		return err
	}

	entries := output.ModuleEntries(mods, s.logger)
	if flagJSON {
		return output.WriteModules(s.out, entries)
	}
	return output.RenderModules(s.out, entries, textStyler())
}

func runModulesTree(cmd *cobra.Command, names []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	p := s.project(s.compilerSourceDirs())
	tree, err := resolver.New(p, s.logger).Tree(requestedModules(s.cfg, names))
	if err != nil {
		return err
	}

	if flagJSON {
		return output.WriteTree(s.out, tree)
	}
	return output.RenderTree(s.out, tree.Roots, textStyler())
}

func runModulesSources(cmd *cobra.Command, names []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	p := s.project(s.compilerSourceDirs())
	res, err := resolver.New(p, s.logger).Resolve(requestedModules(s.cfg, names))
	if err != nil {
		return err
	}

	report := output.NewSourcesReport(res, p.Inputs())
	if flagJSON {
		return output.WriteSources(s.out, report)
	}
	return output.RenderSources(s.out, report, textStyler())
}
