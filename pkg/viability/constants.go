package viability

// Model constants for the viability assessment.
const (
	SqFtToM2          = 0.092903 // m² per ft²
	DaysPerYear       = 365.0
	HouseholdUsageKWh = 10800.0 // kWh/year baseline household consumption
	PriceInflation    = 0.03    // annual electricity price increase
	ViableWithinYears = 10      // payback horizon for a "viable" verdict
	MaxPaybackYears   = 100     // amortization stops here and reports N/A
	DisplayDecimals   = 2
)
