package viability

import (
	"errors"
	"math"
	"testing"

	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
)

func californiaRequest() investment.Request {
	return investment.Request{
		Location:        "California",
		EnergyCostCents: 15,
		AreaSqFt:        1000,
		HouseholdSize:   4,
		PanelType:       "Monocrystalline",
	}
}

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestAssessCalifornia(t *testing.T) {
	res, err := Assess(californiaRequest())
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}

	wantOutput := 5.5 * 0.20 * (1000 * 0.092903) * 365
	if !near(res.EnergyOutputKWhPerYear, wantOutput, 0.005) {
		t.Errorf("energy output = %v, want ~%v", res.EnergyOutputKWhPerYear, wantOutput)
	}
	if res.InitialCostUSD != 18580 {
		t.Errorf("initial cost = %v, want 18580", res.InitialCostUSD)
	}
	wantSavings := (wantOutput - 10800) * 0.15
	if !near(res.YearlySavingsUSD, wantSavings, 0.005) {
		t.Errorf("yearly savings = %v, want ~%v", res.YearlySavingsUSD, wantSavings)
	}

	// Year 10 ends about $8.50 short of the $18,580 cost.
	if !res.Payback.Applicable || res.Payback.Years != 11 {
		t.Errorf("payback = %v, want 11 years", res.Payback)
	}
	if res.Viable {
		t.Error("11-year payback should not be viable")
	}
	if res.Location != "California" || res.PanelType != "Monocrystalline" {
		t.Errorf("unexpected labels: %q / %q", res.Location, res.PanelType)
	}
}

func TestAssessViable(t *testing.T) {
	res, err := Assess(investment.Request{
		Location:        "Arizona",
		EnergyCostCents: 20,
		AreaSqFt:        1000,
		PanelType:       "Thin-film",
	})
	if err != nil {
		t.Fatalf("Assess failed: %v", err)
	}
	if res.Payback.Years != 5 || !res.Payback.Applicable {
		t.Errorf("payback = %v, want 5 years", res.Payback)
	}
	if !res.Viable {
		t.Error("5-year payback should be viable")
	}
	if res.InitialCostUSD != 9290 {
		t.Errorf("initial cost = %v, want 9290", res.InitialCostUSD)
	}
}

func TestAssessUnknownLocation(t *testing.T) {
	req := californiaRequest()
	req.Location = "Atlantis"

	res, err := Assess(req)
	if res != nil {
		t.Errorf("expected nil result, got %+v", res)
	}
	var notFound *LocationNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected LocationNotFoundError, got %v", err)
	}
	if notFound.Location != "Atlantis" {
		t.Errorf("error location = %q, want Atlantis", notFound.Location)
	}
	if err.Error() != "data for Atlantis not found" {
		t.Errorf("unexpected message: %s", err)
	}
}

func TestAssessUnselectedPanel(t *testing.T) {
	req := californiaRequest()
	req.PanelType = string(panel.Unselected)

	res, err := Assess(req)
	if res != nil {
		t.Error("expected nil result for the placeholder panel")
	}
	var notFound *PanelNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected PanelNotFoundError, got %v", err)
	}
}

func TestLocationCheckedBeforePanel(t *testing.T) {
	_, err := Assess(investment.Request{Location: "Atlantis", PanelType: "bogus", AreaSqFt: 10})
	var notFound *LocationNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("expected location error first, got %v", err)
	}
}

func TestZeroAreaSentinel(t *testing.T) {
	for _, area := range []float64{0, -50} {
		for _, pt := range panel.Types() {
			req := investment.Request{
				Location:        "Nevada",
				EnergyCostCents: 30,
				AreaSqFt:        area,
				PanelType:       string(pt),
			}
			res, err := Assess(req)
			if err != nil {
				t.Fatalf("Assess failed: %v", err)
			}
			if res.EnergyOutputKWhPerYear != 0 || res.YearlySavingsUSD != 0 || res.InitialCostUSD != 0 {
				t.Errorf("area %v %s: expected all-zero result, got %+v", area, pt, res)
			}
			if res.Payback.Applicable {
				t.Errorf("area %v %s: payback should be N/A", area, pt)
			}
			if res.Viable {
				t.Errorf("area %v %s: should not be viable", area, pt)
			}
		}
	}
}

func TestZeroIrradianceSentinel(t *testing.T) {
	p, _ := panel.Lookup("Polycrystalline")
	res := Compute(californiaRequest(), p, location.Entry{Name: "Nowhere", Irradiance: 0})
	if res.EnergyOutputKWhPerYear != 0 || res.InitialCostUSD != 0 || res.Payback.Applicable || res.Viable {
		t.Errorf("zero output should short-circuit, got %+v", res)
	}
}

func TestComputeIsPure(t *testing.T) {
	req := californiaRequest()
	p, _ := panel.Lookup(req.PanelType)
	loc, _ := location.Lookup(req.Location)

	first := Compute(req, p, loc)
	for i := 0; i < 5; i++ {
		if got := Compute(req, p, loc); got != first {
			t.Fatalf("run %d differs: %+v vs %+v", i, got, first)
		}
	}
}

func TestInitialCostMatchesCatalog(t *testing.T) {
	for _, e := range panel.All() {
		req := californiaRequest()
		req.PanelType = string(e.Type)
		req.AreaSqFt = 750
		res, err := Assess(req)
		if err != nil {
			t.Fatal(err)
		}
		if !near(res.InitialCostUSD, e.CostPerSqFt*750, 0.005) {
			t.Errorf("%s: initial cost = %v, want %v", e.Type, res.InitialCostUSD, e.CostPerSqFt*750)
		}
	}
}

func TestEnergyOutputLinear(t *testing.T) {
	base := EnergyOutput(4.5, 0.18, 300)
	if !near(EnergyOutput(4.5, 0.18, 600), 2*base, 1e-9) {
		t.Error("output should double with area")
	}
	if !near(EnergyOutput(4.5, 0.36, 300), 2*base, 1e-9) {
		t.Error("output should double with efficiency")
	}
	if EnergyOutput(4.5, 0.18, 0) != 0 {
		t.Error("zero area should produce zero output")
	}
}

func TestYearlySavingsAbsoluteGap(t *testing.T) {
	under := YearlySavings(HouseholdUsageKWh-1000, 0.10)
	over := YearlySavings(HouseholdUsageKWh+1000, 0.10)
	if !near(under, 100, 1e-9) || !near(over, 100, 1e-9) {
		t.Errorf("savings under/over = %v/%v, want 100/100", under, over)
	}
	if YearlySavings(HouseholdUsageKWh, 0.10) != 0 {
		t.Error("output equal to usage should save nothing")
	}
	if YearlySavings(0, 0.10) != 0 {
		t.Error("no output should save nothing")
	}
}

func TestPaybackZeroSavingsIsCapped(t *testing.T) {
	p := PaybackPeriod(5000, 0.15, 0)
	if p.Applicable {
		t.Errorf("zero savings should never pay back, got %v", p)
	}
	if p.String() != "N/A" {
		t.Errorf("String() = %q, want N/A", p.String())
	}
}

func TestPaybackNaNIsCapped(t *testing.T) {
	if p := PaybackPeriod(math.NaN(), 0.15, 100); p.Applicable {
		t.Errorf("NaN cost should not pay back, got %v", p)
	}
	if p := PaybackPeriod(1000, 0.15, math.NaN()); p.Applicable {
		t.Errorf("NaN savings should not pay back, got %v", p)
	}
}

func TestPaybackFreeInstall(t *testing.T) {
	p := PaybackPeriod(0, 0.15, 100)
	if !p.Applicable || p.Years != 0 {
		t.Errorf("zero cost payback = %v, want 0 years", p)
	}
}

func TestPaybackPriceInflation(t *testing.T) {
	// Savings capped by usage*price: 1080, 1112.40, 1145.77 ... cumulative passes 3300 in year 3.
	p := PaybackPeriod(3300, 0.10, 5000)
	if !p.Applicable || p.Years != 3 {
		t.Errorf("payback = %v, want 3 years", p)
	}
	// Without the inflation the same cost would need 4 years.
	if 3*HouseholdUsageKWh*0.10 >= 3300 {
		t.Fatal("test premise broken")
	}
}

func TestZeroEnergyCost(t *testing.T) {
	req := californiaRequest()
	req.EnergyCostCents = 0
	res, err := Assess(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.YearlySavingsUSD != 0 {
		t.Errorf("savings = %v, want 0", res.YearlySavingsUSD)
	}
	if res.InitialCostUSD != 18580 {
		t.Errorf("initial cost = %v, want 18580", res.InitialCostUSD)
	}
	if res.Payback.Applicable || res.Viable {
		t.Errorf("free electricity should never pay back, got %+v", res)
	}
}

func TestExtremeArea(t *testing.T) {
	req := californiaRequest()
	req.AreaSqFt = math.Inf(1)
	res, err := Assess(req)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(res.EnergyOutputKWhPerYear, 1) {
		t.Errorf("expected +Inf output, got %v", res.EnergyOutputKWhPerYear)
	}

	req.AreaSqFt = math.NaN()
	res, err = Assess(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.Viable {
		t.Error("NaN area must not be viable")
	}
}
