package config

import (
	"os"
	"path/filepath"
	"testing"

	"hexcast/internal/fusion"
	"hexcast/internal/signal"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HEXCAST_PROFILE", "")
	t.Setenv("HEXCAST_METHOD", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Profile != fusion.ProfileClassic {
		t.Errorf("default profile = %q, want classic", cfg.Profile)
	}
	if cfg.Method != "coin" {
		t.Errorf("default method = %q, want coin", cfg.Method)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HEXCAST_PROFILE", "dynamic")
	t.Setenv("HEXCAST_METHOD", "yarrow")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Profile != "dynamic" || cfg.Method != "yarrow" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadPolicy_EmptyPathUsesDefaults(t *testing.T) {
	table, err := LoadPolicy("")
	if err != nil {
		t.Fatalf("LoadPolicy failed: %v", err)
	}
	if len(table) != 3 {
		t.Errorf("default table has %d profiles, want 3", len(table))
	}
}

func TestLoadPolicy_File(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
profiles:
  custom:
    - {primary: 0.70, relating: 0.10, mutual: 0.20}
    - {primary: 0.65, relating: 0.15, mutual: 0.20}
    - {primary: 0.60, relating: 0.20, mutual: 0.20}
    - {primary: 0.50, relating: 0.30, mutual: 0.20}
    - {primary: 0.45, relating: 0.35, mutual: 0.20}
    - {primary: 0.40, relating: 0.40, mutual: 0.20}
    - {primary: 0.35, relating: 0.45, mutual: 0.20}
`)
	table, err := LoadPolicy(path)
	if err != nil {
		t.Fatalf("LoadPolicy failed: %v", err)
	}
	row, ok := table["custom"]
	if !ok {
		t.Fatal("custom profile missing")
	}
	if row[3].Relating != 0.30 {
		t.Errorf("count 3 relating = %f, want 0.30", row[3].Relating)
	}
}

func TestLoadPolicy_RejectsWrongEntryCount(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
profiles:
  short:
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
`)
	if _, err := LoadPolicy(path); err == nil {
		t.Error("expected error for profile with fewer than 7 entries")
	}
}

func TestLoadPolicy_RejectsBadSum(t *testing.T) {
	path := writeFile(t, "policy.yaml", `
profiles:
  broken:
    - {primary: 0.5, relating: 0.1, mutual: 0.1}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
    - {primary: 1.0, relating: 0.0, mutual: 0.0}
`)
	if _, err := LoadPolicy(path); err == nil {
		t.Error("expected validation error for a vector not summing to 1.0")
	}
}

func TestLoadThresholds_File(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", `
metrics:
  latency:
    direction: lower
    thresholds: {good: 100, warning: 250, bad: 400}
    window: 6
`)
	defs, err := LoadThresholds(path)
	if err != nil {
		t.Fatalf("LoadThresholds failed: %v", err)
	}
	def, ok := defs["latency"]
	if !ok {
		t.Fatal("latency definition missing")
	}
	if def.Direction != signal.LowerIsBetter || def.Window != 6 {
		t.Errorf("unexpected definition: %+v", def)
	}
}

func TestLoadThresholds_RejectsBadDirection(t *testing.T) {
	path := writeFile(t, "thresholds.yaml", `
metrics:
  latency:
    direction: sideways
    thresholds: {good: 1, warning: 2, bad: 3}
`)
	if _, err := LoadThresholds(path); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestLoadThresholds_MissingFile(t *testing.T) {
	if _, err := LoadThresholds("/nonexistent/thresholds.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
