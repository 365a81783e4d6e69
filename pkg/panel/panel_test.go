package panel

import "testing"

func TestCatalogValues(t *testing.T) {
	cases := []struct {
		name       string
		efficiency float64
		cost       float64
	}{
		{"Monocrystalline", 0.20, 18.58},
		{"Polycrystalline", 0.18, 13.93},
		{"Thin-film", 0.15, 9.29},
	}
	for _, c := range cases {
		e, ok := Lookup(c.name)
		if !ok {
			t.Errorf("%s: not found", c.name)
			continue
		}
		if e.Efficiency != c.efficiency {
			t.Errorf("%s: efficiency = %v, want %v", c.name, e.Efficiency, c.efficiency)
		}
		if e.CostPerSqFt != c.cost {
			t.Errorf("%s: cost = %v, want %v", c.name, e.CostPerSqFt, c.cost)
		}
		if string(e.Type) != c.name {
			t.Errorf("%s: type = %q", c.name, e.Type)
		}
	}
}

func TestSentinelNeverResolves(t *testing.T) {
	if _, ok := Lookup(string(Unselected)); ok {
		t.Error("the placeholder must not resolve to a panel")
	}
	if IsSelected(string(Unselected)) {
		t.Error("IsSelected(placeholder) should be false")
	}
	if _, ok := Lookup(""); ok {
		t.Error("empty type must not resolve")
	}
}

func TestTypesOrderAndCopy(t *testing.T) {
	types := Types()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	if types[0] != Monocrystalline || types[2] != ThinFilm {
		t.Errorf("unexpected order: %v", types)
	}

	types[0] = "mutated"
	if Types()[0] != Monocrystalline {
		t.Error("Types() must return a copy")
	}
}

func TestEfficiencyRange(t *testing.T) {
	for _, e := range All() {
		if e.Efficiency <= 0 || e.Efficiency > 1 {
			t.Errorf("%s: efficiency %v outside (0,1]", e.Type, e.Efficiency)
		}
		if e.CostPerSqFt < 0 {
			t.Errorf("%s: negative cost", e.Type)
		}
	}
}
