package main

import (
	"fmt"

	"github.com/mrsinham/bedgrid/cmd/bedgrid/menu"
	"github.com/mrsinham/bedgrid/internal/config"
	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/mrsinham/bedgrid/internal/logging"
	"github.com/mrsinham/bedgrid/internal/query"
	"github.com/mrsinham/bedgrid/internal/report"
	"github.com/mrsinham/bedgrid/internal/ward"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app carries the persistent flags and the resolved configuration to every
// command.
type app struct {
	configPath string
	outputDir  string
	verbose    bool
	from       string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "bedgrid",
		Short: "Hospital ward bed grid: admit patients and query the ward",
		Long: `bedgrid loads the patients of a ward laid out as a grid of beds, either
interactively, from a roster YAML file (--from) or with a form (wizard), and
then answers questions about it from a menu: average age, long stays,
patients above the average age, a bed's record, and the neighbors of an
infected patient.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runSession,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "load settings from a YAML file")
	pf.StringVar(&a.outputDir, "output", "", "directory for generated files (overrides output_dir)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&a.from, "from", "", "load the ward from a roster YAML file")

	rootCmd.AddCommand(
		newWizardCmd(a),
		newReportCmd(a),
		newBedmapCmd(a),
		newExportCmd(a),
		newDemoCmd(),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return rootCmd
}

// setup resolves the configuration: defaults, then the file, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadFromYAML(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("output") {
		cfg.OutputDir = a.outputDir
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return err
	}

	a.cfg = cfg
	log.Debug().Str("config", a.configPath).Str("output_dir", cfg.OutputDir).Msg("configuration loaded")
	return nil
}

// runSession fills the ward from the console, or from --from, and runs the
// menu.
func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	in := console.NewReader(cmd.InOrStdin(), cmd.OutOrStdout())

	var store *ward.Store
	if a.from != "" {
		s, err := a.loadRoster()
		if err != nil {
			return err
		}
		store = s
	} else {
		store = ward.NewStore()
		if err := console.LoadWard(in, store); err != nil {
			return err
		}
		logLoaded(store, "console")
	}

	return a.newMenu(cmd, in, store).Run()
}

func (a *app) newMenu(cmd *cobra.Command, in *console.Reader, store *ward.Store) *menu.Session {
	return menu.NewSession(in, cmd.OutOrStdout(), query.New(store), a.emitter(), a.cfg.LongStayDays)
}

func (a *app) emitter() *report.Emitter {
	return report.NewEmitter(a.cfg.OutputDir, a.cfg.ReportFiles())
}

// loadRoster reads the --from roster into a new store.
func (a *app) loadRoster() (*ward.Store, error) {
	if a.from == "" {
		return nil, fmt.Errorf("--from is required")
	}
	r, err := ward.LoadRoster(a.from)
	if err != nil {
		return nil, err
	}
	store := ward.NewStore()
	if err := r.LoadInto(store); err != nil {
		return nil, fmt.Errorf("roster %s: %w", a.from, err)
	}
	logLoaded(store, a.from)
	return store, nil
}

func logLoaded(s *ward.Store, source string) {
	log.Info().Int("rows", s.Rows()).Int("cols", s.Cols()).Str("source", source).Msg("ward loaded")
}
