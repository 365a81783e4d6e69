package viability

import "fmt"

// LocationNotFoundError reports a state name with no irradiance entry.
type LocationNotFoundError struct {
	Location string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("data for %s not found", e.Location)
}

// PanelNotFoundError reports a panel type missing from the catalog,
// including the form placeholder.
type PanelNotFoundError struct {
	PanelType string
}

func (e *PanelNotFoundError) Error() string {
	return fmt.Sprintf("unknown panel type %q", e.PanelType)
}
