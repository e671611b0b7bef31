package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, the config file and GWT_*
environment variables have been applied. Paths are shown absolute.`,
	Args: cobra.NoArgs,
	RunE: runE(runConfigShow),
}

func init() {
	configShowCmd.Flags().StringVarP(&flagConfigFormat, "format", "f", "toml", "output format: toml or json")
	configCmd.AddCommand(configShowCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd.Context())
	if err != nil {
		return err
	}
	data, err := cfg.Marshal(flagConfigFormat)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Source != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), SubtitleStyle.Render("# loaded from "+cfg.Source))
	}
	_, err = out.Write(data)
	return err
}
