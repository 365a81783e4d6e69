package viability

import (
	"math"

	"github.com/shopspring/decimal"
)

// Display is a Result rendered as labelled strings for a results panel.
type Display struct {
	Location      string `json:"location"`
	EnergyOutput  string `json:"energy_output"`
	YearlySavings string `json:"yearly_savings"`
	InitialCost   string `json:"initial_cost"`
	PaybackPeriod string `json:"payback_period"`
	Viability     string `json:"viability"`
}

// Display formats the result the way the calculator form shows it.
func (r Result) Display() Display {
	viable := "No"
	if r.Viable {
		viable = "Yes"
	}
	return Display{
		Location:      r.Location,
		EnergyOutput:  fixed(r.EnergyOutputKWhPerYear) + " kWh/year",
		YearlySavings: "$" + fixed(r.YearlySavingsUSD) + "/year",
		InitialCost:   "$" + fixed(r.InitialCostUSD),
		PaybackPeriod: r.Payback.String(),
		Viability:     viable,
	}
}

// FormatUSD renders a dollar amount with two decimals.
func FormatUSD(v float64) string {
	return "$" + fixed(v)
}

func fixed(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return decimal.NewFromFloat(v).StringFixed(DisplayDecimals)
}
