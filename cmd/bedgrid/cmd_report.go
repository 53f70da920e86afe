package main

import (
	"fmt"
	"path/filepath"

	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/mrsinham/bedgrid/internal/report"
	"github.com/mrsinham/bedgrid/internal/util"
	"github.com/spf13/cobra"
)

func newReportCmd(a *app) *cobra.Command {
	var anchor string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the ward summary and write every report file from a roster",
		Example: `  bedgrid report --from sala.yaml
  bedgrid report --from sala.yaml --anchor 1,2 --output informes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadRoster()
			if err != nil {
				return err
			}
			engine := query.New(store)
			emitter := a.emitter()
			out := cmd.OutOrStdout()

			avg, err := engine.AverageAge()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Promedio de edad: %.6g\n", avg)
			console.PrintGrid(out, engine.RenderGrid())

			results := make([]report.Result, 0, 3)
			res, err := emitter.LongStays(engine.FilterByMinDays(a.cfg.LongStayDays))
			if err != nil {
				return err
			}
			results = append(results, res)

			res, err = emitter.AboveAverage(engine.FilterAboveAge(avg))
			if err != nil {
				return err
			}
			results = append(results, res)

			if anchor != "" {
				row, col, err := util.ParsePosition(anchor)
				if err != nil {
					return err
				}
				neighbors, err := engine.AdjacentTo(row, col)
				if err != nil {
					return err
				}
				res, err = emitter.Adjacent(neighbors)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Hay %d pacientes adyacentes al infectado en (%d,%d).\n", len(neighbors), row, col)
				results = append(results, res)
			}

			for _, r := range results {
				fmt.Fprintf(out, "Archivo '%s' generado (%d líneas).\n", filepath.Base(r.Path), r.Lines)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&anchor, "anchor", "", "infected bed as row,col; also writes the adjacency file")
	return cmd
}
