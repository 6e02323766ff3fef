package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCommand(global *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := global.setup(cmd, map[string]string{})
			if err != nil {
				return err
			}

			e := yaml.NewEncoder(cmd.OutOrStdout())
			e.SetIndent(2)
			if err = e.Encode(cfg); err != nil {
				return err
			}
			return e.Close()
		},
	})
	return cmd
}
