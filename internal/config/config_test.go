package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadFromYAML_ValidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bedgrid.yaml")
	content := `
output_dir: ./reports
long_stay_days: 7
log_level: debug
files:
  long_stay: largas.txt
  above_average: mayores.txt
  adjacent: vecinos.txt
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}

	want := &Config{
		OutputDir:    "./reports",
		LongStayDays: 7,
		LogLevel:     "debug",
		Files:        Files{LongStay: "largas.txt", AboveAverage: "mayores.txt", Adjacent: "vecinos.txt"},
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("LoadFromYAML = %+v, want %+v", cfg, want)
	}
}

func TestLoadFromYAML_PartialKeepsDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("long_stay_days: 10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if cfg.LongStayDays != 10 {
		t.Errorf("LongStayDays = %d, want 10", cfg.LongStayDays)
	}
	if cfg.Files.AboveAverage != DefaultAboveAverageFile {
		t.Errorf("Files.AboveAverage = %q, want default %q", cfg.Files.AboveAverage, DefaultAboveAverageFile)
	}
	if got, want := cfg.ReportFiles().LongStay, "internados_mas_10_dias.txt"; got != want {
		t.Errorf("ReportFiles().LongStay = %q, want %q", got, want)
	}
	if cfg.OutputDir != "." {
		t.Errorf("OutputDir = %q, want .", cfg.OutputDir)
	}
}

func TestReportFiles(t *testing.T) {
	cfg := Default()
	if got := cfg.ReportFiles().LongStay; got != DefaultLongStayFile {
		t.Errorf("default LongStay = %q, want %q", got, DefaultLongStayFile)
	}

	cfg.LongStayDays = 1
	if got := cfg.ReportFiles().LongStay; got != "internados_mas_1_dias.txt" {
		t.Errorf("LongStay for 1 day = %q", got)
	}

	cfg.Files.LongStay = "estadias.txt"
	if got := cfg.ReportFiles().LongStay; got != "estadias.txt" {
		t.Errorf("explicit LongStay = %q, want estadias.txt", got)
	}
	if cfg.ReportFiles().Adjacent != DefaultAdjacentFile {
		t.Errorf("Adjacent = %q", cfg.ReportFiles().Adjacent)
	}
}

func TestLoadFromYAML_NonExistentFile(t *testing.T) {
	if _, err := LoadFromYAML("/non/existent/path/config.yaml"); err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadFromYAML_Invalid(t *testing.T) {
	tests := map[string]string{
		"syntax":        "output_dir: [",
		"negative days": "long_stay_days: -1\n",
		"bad level":     "log_level: loud\n",
		"empty file":    "files:\n  adjacent: \"\"\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "invalid.yaml")
			if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFromYAML(configPath); err == nil {
				t.Errorf("Expected error for %s", name)
			}
		})
	}
}

func TestSaveToYAML_RoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "roundtrip.yaml")
	cfg := Default()
	cfg.LongStayDays = 3

	if err := SaveToYAML(cfg, configPath); err != nil {
		t.Fatalf("SaveToYAML failed: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "long_stay_days: 3") {
		t.Errorf("saved YAML missing long_stay_days:\n%s", data)
	}
	if strings.Contains(string(data), "long_stay:") {
		t.Errorf("unset long_stay should be omitted:\n%s", data)
	}

	loaded, err := LoadFromYAML(configPath)
	if err != nil {
		t.Fatalf("LoadFromYAML failed: %v", err)
	}
	if !reflect.DeepEqual(loaded, cfg) {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}

func TestSaveToYAML_InvalidPath(t *testing.T) {
	if err := SaveToYAML(Default(), "/nonexistent/deeply/nested/path/config.yaml"); err == nil {
		t.Error("Expected error when saving to invalid path")
	}
}
