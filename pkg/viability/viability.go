package viability

import (
	"math"

	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/shopspring/decimal"
)

// Result is the outcome of one assessment. Numeric fields are rounded to
// cents / hundredths of a kWh.
type Result struct {
	Location               string  `json:"location"`
	PanelType              string  `json:"panel_type"`
	EnergyOutputKWhPerYear float64 `json:"energy_output_kwh_per_year"`
	YearlySavingsUSD       float64 `json:"yearly_savings_usd"`
	InitialCostUSD         float64 `json:"initial_cost_usd"`
	Payback                Payback `json:"payback_period_years"`
	Viable                 bool    `json:"viable"`
}

// Assess resolves the request's location and panel type and computes the result.
// Unknown names fail with *LocationNotFoundError or *PanelNotFoundError and no result.
func Assess(req investment.Request) (*Result, error) {
	loc, ok := location.Lookup(req.Location)
	if !ok {
		return nil, &LocationNotFoundError{Location: req.Location}
	}
	p, ok := panel.Lookup(req.PanelType)
	if !ok {
		return nil, &PanelNotFoundError{PanelType: req.PanelType}
	}
	res := Compute(req, p, loc)
	return &res, nil
}

// Compute runs the assessment against already-resolved table entries.
// It is a pure function of its arguments.
func Compute(req investment.Request, p panel.Entry, loc location.Entry) Result {
	res := Result{
		Location:  loc.Name,
		PanelType: string(p.Type),
		Payback:   NotApplicable(),
	}

	price := req.EnergyCostUSD()
	output := EnergyOutput(loc.Irradiance, p.Efficiency, req.AreaSqFt)

	// Nothing installed or nothing produced: all-zero, non-viable.
	if req.AreaSqFt <= 0 || output <= 0 {
		return res
	}

	savings := YearlySavings(output, price)
	initialCost := p.CostPerSqFt * req.AreaSqFt
	payback := PaybackPeriod(initialCost, price, savings)

	res.EnergyOutputKWhPerYear = round(output)
	res.YearlySavingsUSD = round(savings)
	res.InitialCostUSD = round(initialCost)
	res.Payback = payback
	res.Viable = payback.Applicable && payback.Years <= ViableWithinYears
	return res
}

// EnergyOutput returns yearly generation in kWh for a panel area in ft².
func EnergyOutput(irradiance, efficiency, areaSqFt float64) float64 {
	if areaSqFt <= 0 {
		return 0
	}
	areaM2 := areaSqFt * SqFtToM2
	return irradiance * efficiency * areaM2 * DaysPerYear
}

// YearlySavings values the gap between generation and household usage at
// the given $/kWh. Over-production counts the same as offset consumption.
func YearlySavings(outputKWh, priceUSD float64) float64 {
	if outputKWh <= 0 {
		return 0
	}
	return math.Abs(outputKWh-HouseholdUsageKWh) * priceUSD
}

// PaybackPeriod amortizes initialCost year by year. Each year saves
// min(usage*price, yearlySavings) and the price then rises by PriceInflation.
// Recovery that would take more than MaxPaybackYears is reported as N/A.
func PaybackPeriod(initialCost, priceUSD, yearlySavings float64) Payback {
	cumulative := 0.0
	years := 0
	// Written as a negation so NaN inputs run into the cap.
	for !(cumulative >= initialCost) {
		if years == MaxPaybackYears {
			return NotApplicable()
		}
		cumulative += math.Min(HouseholdUsageKWh*priceUSD, yearlySavings)
		priceUSD *= 1 + PriceInflation
		years++
	}
	return Payback{Years: years, Applicable: true}
}

func round(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	f, _ := decimal.NewFromFloat(v).Round(DisplayDecimals).Float64()
	return f
}
