package main

import (
	"fmt"
	"io"

	"github.com/3EEEs/Project-Solar/pkg/analytics"
	"github.com/3EEEs/Project-Solar/pkg/location"
	"github.com/3EEEs/Project-Solar/pkg/panel"
	"github.com/3EEEs/Project-Solar/pkg/validation"
	"github.com/3EEEs/Project-Solar/pkg/viability"
)

func printValidationReport(w io.Writer, r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Fprintf(w, "ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  [%s] %s\n", e.Level, e.Message)
			if e.Field != "" && e.ActualValue != nil {
				fmt.Fprintf(w, "    -> %s = %v\n", e.Field, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Fprintf(w, "    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintf(w, "WARNINGS (%d):\n", len(r.Warnings))
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [%s] %s\n", warn.Level, warn.Message)
			for _, s := range warn.Suggestions {
				fmt.Fprintf(w, "    * %s\n", s)
			}
		}
		fmt.Fprintln(w)
	}

	if len(r.Info) > 0 {
		fmt.Fprintf(w, "INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Fprintf(w, "  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Fprintln(w)
	}

	if r.Valid {
		fmt.Fprintf(w, "Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Fprintf(w, "Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(w io.Writer, res *viability.Result) {
	d := res.Display()

	fmt.Fprintln(w, "Solar Viability Assessment")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Location:        %s\n", d.Location)
	fmt.Fprintf(w, "  Panel type:      %s\n", res.PanelType)
	fmt.Fprintf(w, "  Energy output:   %s\n", d.EnergyOutput)
	fmt.Fprintf(w, "  Yearly savings:  %s\n", d.YearlySavings)
	fmt.Fprintf(w, "  Initial cost:    %s\n", d.InitialCost)
	fmt.Fprintf(w, "  Payback period:  %s\n", d.PaybackPeriod)
	fmt.Fprintf(w, "  Viable:          %s\n", d.Viability)
}

func printLocations(w io.Writer) {
	fmt.Fprintf(w, "%-22s %12s\n", "State", "kWh/m²/day")
	fmt.Fprintf(w, "%-22s %12s\n", "----------------------", "------------")
	for _, e := range location.All() {
		fmt.Fprintf(w, "%-22s %12.2f\n", e.Name, e.Irradiance)
	}
}

func printPanels(w io.Writer) {
	fmt.Fprintf(w, "%-18s %10s %10s\n", "Panel", "Efficiency", "$/ft²")
	fmt.Fprintf(w, "%-18s %10s %10s\n", "------------------", "----------", "----------")
	for _, e := range panel.All() {
		fmt.Fprintf(w, "%-18s %9.0f%% %10.2f\n", e.Type, e.Efficiency*100, e.CostPerSqFt)
	}
}

func printComparison(w io.Writer, c *analytics.Comparison, top int) {
	fmt.Fprintf(w, "%s panels, %.2f ft², %.2f¢/kWh\n\n", c.PanelType, c.AreaSqFt, c.EnergyCostCents)

	fmt.Fprintf(w, "%4s %-22s %14s %14s %10s %6s\n", "Rank", "State", "Output kWh", "Savings/yr", "Payback", "Viable")
	fmt.Fprintf(w, "%4s %-22s %14s %14s %10s %6s\n", "----", "----------------------", "--------------", "--------------", "----------", "------")

	rows := c.Rankings
	if top > 0 && top < len(rows) {
		rows = rows[:top]
	}
	for _, r := range rows {
		viable := "no"
		if r.Result.Viable {
			viable = "yes"
		}
		fmt.Fprintf(w, "%4d %-22s %14.2f %14s %10s %6s\n",
			r.Rank, r.Result.Location, r.Result.EnergyOutputKWhPerYear,
			viability.FormatUSD(r.Result.YearlySavingsUSD), r.Result.Payback, viable)
	}

	s := c.Summary
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "-------")
	fmt.Fprintf(w, "  Viable states:          %d of %d\n", s.ViableCount, s.Locations)
	if s.PaybackCount > 0 {
		fmt.Fprintf(w, "  Payback (mean±sd):      %.1f ± %.1f years\n", s.MeanPaybackYears, s.StdDevPayback)
		fmt.Fprintf(w, "  Payback (median):       %.0f years\n", s.MedianPayback)
	} else {
		fmt.Fprintln(w, "  Payback:                N/A in every state")
	}
	fmt.Fprintf(w, "  Energy output range:    %.2f - %.2f kWh/year\n", s.MinEnergyOutput, s.MaxEnergyOutput)
	fmt.Fprintf(w, "  Mean yearly savings:    %s\n", viability.FormatUSD(s.MeanYearlySavings))
}
