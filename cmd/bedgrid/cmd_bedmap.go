package main

import (
	"fmt"
	"path/filepath"

	"github.com/mrsinham/bedgrid/internal/bedmap"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/spf13/cobra"
)

func newBedmapCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "bedmap",
		Short: "Render the bed grid of a roster as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadRoster()
			if err != nil {
				return err
			}
			path := filepath.Join(a.cfg.OutputDir, file)
			if err := bedmap.WriteFile(path, query.New(store).RenderGrid(), query.VacantToken); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Archivo '%s' generado.\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "camas.png", "image file name inside the output directory")
	return cmd
}
