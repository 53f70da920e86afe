package main

import (
	"errors"
	"fmt"

	"github.com/mrsinham/bedgrid/cmd/bedgrid/wizard"
	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWizardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Admit the patients with an interactive form, then open the menu",
		Long: `wizard asks for the ward size and every bed's patient in a terminal form.
With --from, the form is pre-filled from a roster file. The ward can be saved
as a roster from the summary screen.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roster, err := wizard.Run(a.from)
			if errors.Is(err, wizard.ErrCancelled) {
				log.Info().Msg("wizard cancelled")
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelado.")
				return nil
			}
			if err != nil {
				return err
			}

			store := ward.NewStore()
			if err := roster.LoadInto(store); err != nil {
				return err
			}
			logLoaded(store, "wizard")

			in := console.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())
			return a.newMenu(cmd, in, store).Run()
		},
	}
}
