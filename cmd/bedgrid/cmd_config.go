package main

import (
	"fmt"
	"os"

	"github.com/mrsinham/bedgrid/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// defaultConfigFile is where config init writes when no path is given.
const defaultConfigFile = "bedgrid.yaml"

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the settings file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the current settings to a YAML file",
		Long: `config init writes the resolved settings (defaults, then --config, then
--output and --verbose) to file, bedgrid.yaml by default, ready to be edited
and passed back with --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
			}
			if err := config.SaveToYAML(a.cfg, path); err != nil {
				return err
			}
			log.Info().Str("path", path).Msg("config written")
			fmt.Fprintf(cmd.OutOrStdout(), "Configuración guardada en %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
