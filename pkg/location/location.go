package location

import "sort"

// Entry is the solar resource for one state.
type Entry struct {
	Name       string  `json:"name" yaml:"name"`
	Irradiance float64 `json:"irradiance_kwh_m2_day" yaml:"irradiance_kwh_m2_day"` // kWh/m²/day
}

// Average daily irradiance on a tilted surface, kWh/m²/day.
var irradiance = map[string]float64{
	"Alabama":              4.23,
	"Alaska":               2.06,
	"Arizona":              5.76,
	"Arkansas":             4.69,
	"California":           5.50,
	"Colorado":             5.15,
	"Connecticut":          3.79,
	"Delaware":             4.27,
	"District of Columbia": 4.12,
	"Florida":              5.27,
	"Georgia":              4.74,
	"Hawaii":               5.59,
	"Idaho":                4.92,
	"Illinois":             4.08,
	"Indiana":              4.21,
	"Iowa":                 4.38,
	"Kansas":               5.08,
	"Kentucky":             4.11,
	"Louisiana":            4.86,
	"Maine":                3.71,
	"Maryland":             4.47,
	"Massachusetts":        3.84,
	"Michigan":             3.78,
	"Minnesota":            4.16,
	"Mississippi":          4.64,
	"Missouri":             4.73,
	"Montana":              4.31,
	"Nebraska":             4.79,
	"Nevada":               5.98,
	"New Hampshire":        3.75,
	"New Jersey":           4.24,
	"New Mexico":           6.01,
	"New York":             3.62,
	"North Carolina":       4.71,
	"North Dakota":         4.44,
	"Ohio":                 3.94,
	"Oklahoma":             5.09,
	"Oregon":               4.15,
	"Pennsylvania":         3.91,
	"Rhode Island":         4.00,
	"South Carolina":       4.81,
	"South Dakota":         4.63,
	"Tennessee":            4.45,
	"Texas":                5.26,
	"Utah":                 5.38,
	"Vermont":              3.53,
	"Virginia":             4.13,
	"Washington":           3.57,
	"West Virginia":        3.87,
	"Wisconsin":            4.29,
	"Wyoming":              5.05,
}

// Lookup returns the entry for a state name. The second return is false
// when the name is not in the table.
func Lookup(name string) (Entry, bool) {
	v, ok := irradiance[name]
	if !ok {
		return Entry{}, false
	}
	return Entry{Name: name, Irradiance: v}, true
}

// Names returns all state names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(irradiance))
	for name := range irradiance {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every entry, ordered by name.
func All() []Entry {
	names := Names()
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name, Irradiance: irradiance[name]}
	}
	return entries
}
