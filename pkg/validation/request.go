package validation

import (
	"fmt"
	"math"
	"strings"

	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/3EEEs/Project-Solar/pkg/viability"
)

// placeholder is the "nothing chosen yet" value of the form dropdowns.
const placeholder = string(panel.Unselected)

// Upper bounds on numeric input. Within them every derived figure stays
// finite and fits a JSON number.
const (
	MaxAreaSqFt        = 1e9
	MaxEnergyCostCents = 1e6
)

// ValidateRequest checks form input before it reaches the calculator.
func ValidateRequest(req investment.Request) *Report {
	r := NewReport()

	validateLocation(req, r)
	validatePanel(req, r)
	validateEnergyCost(req, r)
	validateArea(req, r)
	validateHousehold(req, r)

	return r
}

// ValidateComparison checks a request that will be run against every
// location. The location field is ignored.
func ValidateComparison(req investment.Request) *Report {
	r := NewReport()

	validatePanel(req, r)
	validateEnergyCost(req, r)
	validateArea(req, r)

	return r
}

func validateLocation(req investment.Request, r *Report) {
	if req.Location == "" || req.Location == placeholder {
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "please select a location",
			Field:    "location",
			Expected: "a U.S. state name",
		})
		return
	}
	if _, ok := location.Lookup(req.Location); !ok {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("no solar data for %q", req.Location),
			Field:       "location",
			ActualValue: req.Location,
			Expected:    "one of the 50 states or District of Columbia",
		})
	}
}

func validatePanel(req investment.Request, r *Report) {
	if req.PanelType == "" || req.PanelType == placeholder {
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "please select a panel type",
			Field:    "panel_type",
			Expected: panelChoices(),
		})
		return
	}
	if !panel.IsSelected(req.PanelType) {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("unknown panel type %q", req.PanelType),
			Field:       "panel_type",
			ActualValue: req.PanelType,
			Expected:    panelChoices(),
		})
	}
}

func validateEnergyCost(req investment.Request, r *Report) {
	c := req.EnergyCostCents
	switch {
	case math.IsNaN(c) || math.IsInf(c, 0):
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "energy cost must be a finite number",
			Field:    "energy_cost_cents_per_kwh",
			Expected: ">= 0",
		})
	case c < 0:
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "energy cost must be non-negative",
			Field:       "energy_cost_cents_per_kwh",
			ActualValue: c,
			Expected:    ">= 0",
		})
	case c > MaxEnergyCostCents:
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("energy cost must be at most %.0f cents/kWh", MaxEnergyCostCents),
			Field:       "energy_cost_cents_per_kwh",
			ActualValue: c,
			Expected:    fmt.Sprintf("<= %.0f", MaxEnergyCostCents),
		})
	case c == 0:
		r.AddWarning(Result{
			Level:       LevelModel,
			Message:     "energy cost is zero; panels cannot pay back",
			Field:       "energy_cost_cents_per_kwh",
			ActualValue: c,
			Suggestions: []string{"Enter your utility rate in cents per kWh (e.g. 15)"},
		})
	}
}

func validateArea(req investment.Request, r *Report) {
	a := req.AreaSqFt
	switch {
	case math.IsNaN(a) || math.IsInf(a, 0):
		r.AddError(Result{
			Level:    LevelInput,
			Message:  "area must be a finite number",
			Field:    "area_sq_ft",
			Expected: ">= 0",
		})
	case a < 0:
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "area must be non-negative",
			Field:       "area_sq_ft",
			ActualValue: a,
			Expected:    ">= 0",
		})
	case a > MaxAreaSqFt:
		r.AddError(Result{
			Level:       LevelInput,
			Message:     fmt.Sprintf("area must be at most %.0f ft²", MaxAreaSqFt),
			Field:       "area_sq_ft",
			ActualValue: a,
			Expected:    fmt.Sprintf("<= %.0f", MaxAreaSqFt),
		})
	case a == 0:
		r.AddWarning(Result{
			Level:       LevelModel,
			Message:     "no panel area; assessment will be non-viable",
			Field:       "area_sq_ft",
			ActualValue: a,
		})
	}
}

func validateHousehold(req investment.Request, r *Report) {
	if req.HouseholdSize < 0 {
		r.AddError(Result{
			Level:       LevelInput,
			Message:     "household size must be non-negative",
			Field:       "household_size",
			ActualValue: req.HouseholdSize,
			Expected:    ">= 0",
		})
		return
	}
	r.AddInfo(Result{
		Level:   LevelModel,
		Message: fmt.Sprintf("household size does not affect the estimate; usage is fixed at %.0f kWh/year", viability.HouseholdUsageKWh),
		Field:   "household_size",
	})
}

func panelChoices() string {
	var names []string
	for _, t := range panel.Types() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
