package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "solarcalc",
		Short:        "Estimate whether rooftop solar pays back in a U.S. state",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(assessCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(locationsCmd())
	rootCmd.AddCommand(panelsCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(serveCmd())
	return rootCmd
}

// requestFlags binds the investment fields as flags, for use without a file.
type requestFlags struct {
	location  string
	cost      float64
	area      float64
	household int
	panel     string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "U.S. state name, e.g. \"California\"")
	cmd.Flags().Float64VarP(&f.cost, "cost", "c", 0, "electricity cost in cents per kWh")
	cmd.Flags().Float64VarP(&f.area, "area", "a", 0, "available roof area in square feet")
	cmd.Flags().IntVar(&f.household, "household", 0, "number of people in the household")
	cmd.Flags().StringVarP(&f.panel, "panel", "p", "", "panel type: Monocrystalline, Polycrystalline or Thin-film")
}

func assessCmd() *cobra.Command {
	var flags requestFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "assess [request-file]",
		Short: "Assess one investment from a YAML file or flags",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args, flags)
			if err != nil {
				return err
			}
			return runAssess(cmd.OutOrStdout(), req, asJSON)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	var flags requestFlags

	cmd := &cobra.Command{
		Use:   "validate [request-file]",
		Short: "Check a request without running the assessment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args, flags)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), req)
		},
	}

	flags.register(cmd)
	return cmd
}

func locationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List states and their solar irradiance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printLocations(cmd.OutOrStdout())
			return nil
		},
	}
}

func panelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panels",
		Short: "List panel types with efficiency and installed cost",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printPanels(cmd.OutOrStdout())
			return nil
		},
	}
}

func compareCmd() *cobra.Command {
	var flags requestFlags
	var top int

	cmd := &cobra.Command{
		Use:   "compare [request-file]",
		Short: "Assess the same installation in every state and rank them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(args, flags)
			if err != nil {
				return err
			}
			return runCompare(cmd.OutOrStdout(), req, top)
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&top, "top", "n", 0, "only show the first n states (0 = all)")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web calculator and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, envFile, port)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "P", 0, "HTTP server port (overrides SOLAR_PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with SOLAR_* settings")
	return cmd
}
