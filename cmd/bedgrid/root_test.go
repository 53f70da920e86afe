package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mrsinham/bedgrid/internal/config"
	"github.com/mrsinham/bedgrid/internal/console"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Defaults(t *testing.T) {
	a := &app{}
	require.NoError(t, a.setup(&cobra.Command{}, nil))
	assert.Equal(t, ".", a.cfg.OutputDir)
	assert.Equal(t, 5, a.cfg.LongStayDays)
	assert.Equal(t, "warn", a.cfg.LogLevel)
}

func TestSetup_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: desde-archivo\nlong_stay_days: 3\n"), 0644))

	cmd := &cobra.Command{}
	cmd.Flags().String("output", "", "")
	require.NoError(t, cmd.Flags().Set("output", "desde-flag"))

	a := &app{configPath: path, outputDir: "desde-flag", verbose: true}
	require.NoError(t, a.setup(cmd, nil))

	assert.Equal(t, "desde-flag", a.cfg.OutputDir)
	assert.Equal(t, 3, a.cfg.LongStayDays)
	assert.Equal(t, "debug", a.cfg.LogLevel)
}

func TestSetup_BadConfigFile(t *testing.T) {
	a := &app{configPath: filepath.Join(t.TempDir(), "missing.yaml")}
	assert.Error(t, a.setup(&cobra.Command{}, nil))
}

func TestLoadRoster_Required(t *testing.T) {
	_, err := (&app{}).loadRoster()
	assert.ErrorContains(t, err, "--from is required")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version"})
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "bedgrid dev\n", out.String())
}

// execute runs a fresh root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestSession_InputEndsWhileLoading(t *testing.T) {
	_, err := execute(t, "1\n1\nAna\n", "--output", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, console.ErrInputClosed)
	assert.Equal(t, "input closed before a valid value was entered", err.Error())
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bedgrid.yaml")

	out, err := execute(t, "", "config", "init", path, "--output", "reportes")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuración guardada en "+path)

	cfg, err := config.LoadFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "reportes", cfg.OutputDir)
	assert.Equal(t, config.DefaultLongStayDays, cfg.LongStayDays)
	assert.Equal(t, config.DefaultLongStayFile, cfg.ReportFiles().LongStay)

	_, err = execute(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, "", "config", "init", path, "--force", "--verbose")
	require.NoError(t, err)
	cfg, err = config.LoadFromYAML(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestSplitArgs(t *testing.T) {
	assert.Equal(t,
		[]string{"export-dicom", "--tag", "InstitutionName=Hospital Central", "--dir", "x"},
		splitArgs("export-dicom --tag 'InstitutionName=Hospital Central'  --dir x"))
}
