package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the resolved configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the configuration after defaults, file, environment and flags",
		Long: `Print the effective configuration as YAML.

Examples:
  lensops config show
  LENSING_DERIVATIVES_BACKEND=autodiff lensops config show
  lensops config show --config lensing.yaml --max-evaluation-grid-size 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeYAML(cmd.OutOrStdout(), a.cfg)
		},
	})

	return cmd
}
