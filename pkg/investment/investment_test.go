package investment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProject(t *testing.T) {
	r, err := LoadProject("../../examples/california")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if r.Location != "California" {
		t.Errorf("location = %q, want %q", r.Location, "California")
	}
	if r.EnergyCostCents != 15 {
		t.Errorf("energy_cost_cents_per_kwh = %v, want 15", r.EnergyCostCents)
	}
	if r.AreaSqFt != 1000 {
		t.Errorf("area_sq_ft = %v, want 1000", r.AreaSqFt)
	}
	if r.HouseholdSize != 4 {
		t.Errorf("household_size = %d, want 4", r.HouseholdSize)
	}
	if r.PanelType != "Monocrystalline" {
		t.Errorf("panel_type = %q, want %q", r.PanelType, "Monocrystalline")
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestLoadPathFileAndDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "custom.yaml")
	body := "location: Texas\nenergy_cost_cents_per_kwh: 12.5\narea_sq_ft: 400\npanel_type: Thin-film\n"
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadPath(file)
	if err != nil {
		t.Fatalf("LoadPath(file) failed: %v", err)
	}
	if r.Location != "Texas" || r.EnergyCostCents != 12.5 || r.AreaSqFt != 400 {
		t.Errorf("unexpected request: %+v", r)
	}
	if r.HouseholdSize != 0 {
		t.Errorf("household_size = %d, want 0 when omitted", r.HouseholdSize)
	}

	if _, err := LoadPath(dir); err == nil {
		t.Error("directory without investment.yaml should fail")
	}

	r, err = LoadPath("../../examples/arizona-thin-film")
	if err != nil {
		t.Fatalf("LoadPath(dir) failed: %v", err)
	}
	if r.Location != "Arizona" {
		t.Errorf("location = %q, want Arizona", r.Location)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("location: [unterminated")); err == nil {
		t.Error("expected parse error")
	}
	if _, err := Parse([]byte("area_sq_ft: lots")); err == nil {
		t.Error("expected type error for non-numeric area")
	}
}

func TestEnergyCostUSD(t *testing.T) {
	r := Request{EnergyCostCents: 15}
	if got := r.EnergyCostUSD(); got != 0.15 {
		t.Errorf("EnergyCostUSD = %v, want 0.15", got)
	}
}
