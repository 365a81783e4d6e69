package analytics

import "github.com/3EEEs/Project-Solar/pkg/viability"

// Ranked is one location's assessment and its position in the comparison.
type Ranked struct {
	Rank       int              `json:"rank"`
	Irradiance float64          `json:"irradiance_kwh_m2_day"`
	Result     viability.Result `json:"result"`
}

// Summary aggregates the results across every location.
type Summary struct {
	Locations         int     `json:"locations"`
	ViableCount       int     `json:"viable_count"`
	PaybackCount      int     `json:"payback_count"` // locations with an applicable payback
	MeanPaybackYears  float64 `json:"mean_payback_years"`
	StdDevPayback     float64 `json:"stddev_payback_years"`
	MedianPayback     float64 `json:"median_payback_years"`
	MinEnergyOutput   float64 `json:"min_energy_output_kwh"`
	MaxEnergyOutput   float64 `json:"max_energy_output_kwh"`
	MeanYearlySavings float64 `json:"mean_yearly_savings_usd"`
}

// Comparison is the same request assessed in every location.
type Comparison struct {
	PanelType       string   `json:"panel_type"`
	EnergyCostCents float64  `json:"energy_cost_cents_per_kwh"`
	AreaSqFt        float64  `json:"area_sq_ft"`
	Rankings        []Ranked `json:"rankings"`
	Summary         Summary  `json:"summary"`
}
