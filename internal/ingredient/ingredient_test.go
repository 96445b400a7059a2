package ingredient

import (
	"math"
	"testing"
)

func TestGramsPerCup(t *testing.T) {
	cat := NewCatalog()

	tests := []struct {
		name     string
		expected float64
		ok       bool
	}{
		{"all-purpose flour", 120, true},
		{"All-Purpose Flour", 120, true},
		{"all_purpose flour", 120, true},
		{"flour", 120, true},
		{"plain flour", 120, true},
		{"sugar", 200, true},
		{"dark brown sugar", 220, true},
		{"butter", 227, true},
		{"unsalted butter", 227, true},
		{"water", 237, true},
		{"all-purpose flour, sifted", 120, true},
		{"cold unsalted butter", 227, true},
		// known names inside a larger word must not match
		{"watermelon", 0, false},
		{"saltine crackers", 0, false},
		{"dragon fruit", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.GramsPerCup(tt.name)
			if ok != tt.ok {
				t.Fatalf("GramsPerCup(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("GramsPerCup(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestAddIngredient(t *testing.T) {
	cat := NewCatalog()
	cat.AddIngredient("Masa Harina", 114, []string{"masa"})
	cat.AddIngredient("all-purpose flour", 125, nil)

	if d, ok := cat.GramsPerCup("masa harina"); !ok || d != 114 {
		t.Errorf("GramsPerCup(masa harina) = %v, %v; want 114, true", d, ok)
	}
	if d, ok := cat.GramsPerCup("masa"); !ok || d != 114 {
		t.Errorf("GramsPerCup(masa) = %v, %v; want 114, true", d, ok)
	}
	if d, ok := cat.GramsPerCup("all-purpose flour"); !ok || d != 125 {
		t.Errorf("override GramsPerCup(all-purpose flour) = %v, %v; want 125, true", d, ok)
	}
}

func TestGramsPerMilliliter(t *testing.T) {
	cat := NewCatalog()

	d, ok := cat.GramsPerMilliliter("water")
	if !ok {
		t.Fatal("GramsPerMilliliter(water) not found")
	}
	if math.Abs(d-237.0/236.588) > 1e-9 {
		t.Errorf("GramsPerMilliliter(water) = %v, want %v", d, 237.0/236.588)
	}

	if _, ok := cat.GramsPerMilliliter("dragon fruit"); ok {
		t.Error("GramsPerMilliliter(dragon fruit) expected miss")
	}
}

func TestNames(t *testing.T) {
	cat := NewCatalog()
	cat.AddIngredient("masa harina", 114, nil)

	names := cat.Names()
	if len(names) != len(defaultDensities)+1 {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(defaultDensities)+1)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
