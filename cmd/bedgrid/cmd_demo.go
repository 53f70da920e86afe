package main

import (
	"fmt"
	"time"

	"github.com/mrsinham/bedgrid/internal/util"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	var (
		size string
		seed int64
		file string
	)

	cmd := &cobra.Command{
		Use:     "demo",
		Short:   "Write a random roster YAML file",
		Example: `  bedgrid demo --size 3x4 --seed 42 --file sala.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows, cols, err := util.ParseGridSize(size)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			r, err := util.GenerateRoster(util.RosterOptions{Rows: rows, Cols: cols, Seed: seed})
			if err != nil {
				return err
			}
			if err := ward.SaveRoster(r, file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sala de %dx%d guardada en %s (seed %d)\n", rows, cols, file, seed)
			return nil
		},
	}

	cmd.Flags().StringVar(&size, "size", "3x3", "ward size as ROWSxCOLS")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducibility (random if 0)")
	cmd.Flags().StringVarP(&file, "file", "f", "sala.yaml", "roster file to write")
	return cmd
}
