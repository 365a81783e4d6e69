package investment

// Request is one user's solar investment question.
type Request struct {
	Location        string  `yaml:"location" json:"location"`
	EnergyCostCents float64 `yaml:"energy_cost_cents_per_kwh" json:"energy_cost_cents_per_kwh"`
	AreaSqFt        float64 `yaml:"area_sq_ft" json:"area_sq_ft"`
	HouseholdSize   int     `yaml:"household_size" json:"household_size"` // carried, not used by the model
	PanelType       string  `yaml:"panel_type" json:"panel_type"`
}

// EnergyCostUSD returns the electricity price in dollars per kWh.
func (r Request) EnergyCostUSD() float64 {
	return r.EnergyCostCents / 100
}
