package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/3EEEs/Project-Solar/internal/config"
	"github.com/3EEEs/Project-Solar/internal/logging"
	"github.com/3EEEs/Project-Solar/internal/server"
	"github.com/3EEEs/Project-Solar/pkg/analytics"
	"github.com/3EEEs/Project-Solar/pkg/investment"
	"github.com/3EEEs/Project-Solar/pkg/validation"
	"github.com/3EEEs/Project-Solar/pkg/viability"
	"github.com/spf13/cobra"
)

var errInvalidRequest = errors.New("request has validation errors")

// loadRequest reads the request from a file or directory argument, or from
// flags when no argument is given.
func loadRequest(args []string, f requestFlags) (investment.Request, error) {
	if len(args) == 1 {
		req, err := investment.LoadPath(args[0])
		if err != nil {
			return investment.Request{}, fmt.Errorf("loading request: %w", err)
		}
		return *req, nil
	}
	return investment.Request{
		Location:        f.location,
		EnergyCostCents: f.cost,
		AreaSqFt:        f.area,
		HouseholdSize:   f.household,
		PanelType:       f.panel,
	}, nil
}

func runValidate(w io.Writer, req investment.Request) error {
	report := validation.ValidateRequest(req)
	printValidationReport(w, report)
	if !report.Valid {
		return errInvalidRequest
	}
	return nil
}

func runAssess(w io.Writer, req investment.Request, asJSON bool) error {
	report := validation.ValidateRequest(req)
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("%w; fix before assessing", errInvalidRequest)
	}

	res, err := viability.Assess(req)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"request":    req,
			"result":     res,
			"validation": report,
		})
	}

	printResult(w, res)
	if len(report.Warnings) > 0 {
		fmt.Fprintln(w)
		printValidationReport(w, report)
	}
	return nil
}

func runCompare(w io.Writer, req investment.Request, top int) error {
	report := validation.ValidateComparison(req)
	if !report.Valid {
		printValidationReport(w, report)
		return fmt.Errorf("%w; fix before comparing", errInvalidRequest)
	}

	c, err := analytics.Compare(req)
	if err != nil {
		return err
	}
	printComparison(w, c, top)
	return nil
}

func runServe(cmd *cobra.Command, envFile string, port int) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Port = port
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := logging.New(level, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, cmd.OutOrStdout())
	return srv.Start(ctx)
}
