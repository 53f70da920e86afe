package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/mrsinham/bedgrid/internal/dicom"
	"github.com/spf13/cobra"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		dir      string
		date     string
		tagFlags []string
	)

	cmd := &cobra.Command{
		Use:   "export-dicom",
		Short: "Export the roster as DICOM files, one per bed",
		Long: `export-dicom writes one DICOM file per bed carrying the patient's name,
DNI (as PatientID), age, admitting date and bed location. All files share a
study so they can be imported into a PACS together.`,
		Example: `  bedgrid export-dicom --from sala.yaml --tag InstitutionName="Hospital Central"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.loadRoster()
			if err != nil {
				return err
			}
			tags, err := dicom.ParseTagFlags(tagFlags)
			if err != nil {
				return err
			}

			opts := dicom.ExportOptions{
				OutputDir: dir,
				Tags:      tags,
			}
			if opts.OutputDir == "" {
				opts.OutputDir = filepath.Join(a.cfg.OutputDir, "dicom")
			}
			if date != "" {
				opts.Date, err = time.Parse("2006-01-02", date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, use YYYY-MM-DD", date)
				}
			}

			files, err := dicom.ExportCensus(store, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d archivos DICOM generados en %s\n", len(files), opts.OutputDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "destination directory (default <output>/dicom)")
	cmd.Flags().StringVar(&date, "date", "", "census date as YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&tagFlags, "tag", nil, "set a census tag: 'TagName=Value' (repeatable)")
	return cmd
}
