package analytics

import (
	"sort"

	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/3EEEs/Project-Solar/pkg/viability"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compare assesses req in every location, ignoring req.Location.
// Rankings put the fastest payback first; locations that never pay back
// come last, ordered by savings.
func Compare(req investment.Request) (*Comparison, error) {
	p, ok := panel.Lookup(req.PanelType)
	if !ok {
		return nil, &viability.PanelNotFoundError{PanelType: req.PanelType}
	}

	entries := location.All()
	rankings := make([]Ranked, len(entries))
	for i, loc := range entries {
		rankings[i] = Ranked{
			Irradiance: loc.Irradiance,
			Result:     viability.Compute(req, p, loc),
		}
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		return better(rankings[i].Result, rankings[j].Result)
	})
	for i := range rankings {
		rankings[i].Rank = i + 1
	}

	return &Comparison{
		PanelType:       string(p.Type),
		EnergyCostCents: req.EnergyCostCents,
		AreaSqFt:        req.AreaSqFt,
		Rankings:        rankings,
		Summary:         summarize(rankings),
	}, nil
}

// better orders two results: applicable payback before N/A, shorter payback,
// higher savings, then name.
func better(a, b viability.Result) bool {
	if a.Payback.Applicable != b.Payback.Applicable {
		return a.Payback.Applicable
	}
	if a.Payback.Applicable && a.Payback.Years != b.Payback.Years {
		return a.Payback.Years < b.Payback.Years
	}
	if a.YearlySavingsUSD != b.YearlySavingsUSD {
		return a.YearlySavingsUSD > b.YearlySavingsUSD
	}
	return a.Location < b.Location
}

func summarize(rankings []Ranked) Summary {
	s := Summary{Locations: len(rankings)}
	if len(rankings) == 0 {
		return s
	}

	var paybacks []float64
	outputs := make([]float64, len(rankings))
	savings := make([]float64, len(rankings))
	for i, r := range rankings {
		if r.Result.Viable {
			s.ViableCount++
		}
		if r.Result.Payback.Applicable {
			paybacks = append(paybacks, float64(r.Result.Payback.Years))
		}
		outputs[i] = r.Result.EnergyOutputKWhPerYear
		savings[i] = r.Result.YearlySavingsUSD
	}

	s.MinEnergyOutput = floats.Min(outputs)
	s.MaxEnergyOutput = floats.Max(outputs)
	s.MeanYearlySavings = stat.Mean(savings, nil)

	s.PaybackCount = len(paybacks)
	if len(paybacks) > 0 {
		sort.Float64s(paybacks)
		s.MeanPaybackYears = stat.Mean(paybacks, nil)
		s.MedianPayback = stat.Quantile(0.5, stat.Empirical, paybacks, nil)
		if len(paybacks) > 1 {
			s.StdDevPayback = stat.StdDev(paybacks, nil)
		}
	}
	return s
}
