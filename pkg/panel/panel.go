package panel

// Type names a panel technology as it appears in the input form.
type Type string

const (
	Monocrystalline Type = "Monocrystalline"
	Polycrystalline Type = "Polycrystalline"
	ThinFilm        Type = "Thin-film"

	// Unselected is the form placeholder. It never resolves to an Entry.
	Unselected Type = "Please Select"
)

// Entry describes one panel technology.
type Entry struct {
	Type        Type    `json:"type" yaml:"type"`
	Efficiency  float64 `json:"efficiency" yaml:"efficiency"`         // fraction of incident energy converted
	CostPerSqFt float64 `json:"cost_per_sq_ft" yaml:"cost_per_sq_ft"` // installed $/ft²
}

var catalog = map[Type]Entry{
	Monocrystalline: {Type: Monocrystalline, Efficiency: 0.20, CostPerSqFt: 18.58},
	Polycrystalline: {Type: Polycrystalline, Efficiency: 0.18, CostPerSqFt: 13.93},
	ThinFilm:        {Type: ThinFilm, Efficiency: 0.15, CostPerSqFt: 9.29},
}

var order = []Type{Monocrystalline, Polycrystalline, ThinFilm}

// Lookup returns the catalog entry for a panel type name.
func Lookup(name string) (Entry, bool) {
	e, ok := catalog[Type(name)]
	return e, ok
}

// IsSelected reports whether a form value names a real panel type.
func IsSelected(name string) bool {
	_, ok := catalog[Type(name)]
	return ok
}

// Types returns the valid panel types from most to least efficient.
func Types() []Type {
	out := make([]Type, len(order))
	copy(out, order)
	return out
}

// All returns every catalog entry in Types() order.
func All() []Entry {
	out := make([]Entry, len(order))
	for i, t := range order {
		out[i] = catalog[t]
	}
	return out
}
