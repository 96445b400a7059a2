// Package units normalizes measurement unit names and converts between US
// customary and metric amounts.
package units

import (
	"fmt"
	"sort"
	"strings"
)

type Kind string

const (
	KindVolume      Kind = "volume"
	KindWeight      Kind = "weight"
	KindTemperature Kind = "temperature"
	KindUnknown     Kind = "unknown"
)

// mlPerUnit holds milliliters per canonical volume unit.
var mlPerUnit = map[string]float64{
	"cup":         236.588,
	"tablespoon":  14.787,
	"teaspoon":    4.929,
	"fluid ounce": 29.574,
	"pint":        473.176,
	"quart":       946.353,
	"gallon":      3785.41,
	"milliliter":  1,
	"liter":       1000,
}

// gramsPerUnit holds grams per canonical weight unit.
var gramsPerUnit = map[string]float64{
	"gram":     1,
	"kilogram": 1000,
	"ounce":    28.35,
	"pound":    453.592,
}

// aliases maps normalized spellings to canonical unit names. Keys are
// lowercase with dots stripped; single letters that collide across units are
// handled case-sensitively in Canonical.
var aliases = map[string]string{
	"cup":  "cup",
	"cups": "cup",
	"c":    "cup",

	"tablespoon":  "tablespoon",
	"tablespoons": "tablespoon",
	"tbsp":        "tablespoon",
	"tbs":         "tablespoon",
	"tbl":         "tablespoon",

	"teaspoon":  "teaspoon",
	"teaspoons": "teaspoon",
	"tsp":       "teaspoon",

	"fluid ounce":  "fluid ounce",
	"fluid ounces": "fluid ounce",
	"fl oz":        "fluid ounce",
	"floz":         "fluid ounce",

	"pint":  "pint",
	"pints": "pint",
	"pt":    "pint",

	"quart":  "quart",
	"quarts": "quart",
	"qt":     "quart",

	"gallon":  "gallon",
	"gallons": "gallon",
	"gal":     "gallon",

	"milliliter":  "milliliter",
	"milliliters": "milliliter",
	"millilitre":  "milliliter",
	"millilitres": "milliliter",
	"ml":          "milliliter",

	"liter":  "liter",
	"liters": "liter",
	"litre":  "liter",
	"litres": "liter",
	"l":      "liter",

	"pound":  "pound",
	"pounds": "pound",
	"lb":     "pound",
	"lbs":    "pound",

	"ounce":  "ounce",
	"ounces": "ounce",
	"oz":     "ounce",

	"gram":  "gram",
	"grams": "gram",
	"g":     "gram",

	"kilogram":  "kilogram",
	"kilograms": "kilogram",
	"kg":        "kilogram",

	"fahrenheit": "fahrenheit",
	"f":          "fahrenheit",
	"°f":         "fahrenheit",
	"degrees f":  "fahrenheit",
	"degree f":   "fahrenheit",
	"deg f":      "fahrenheit",

	"celsius":   "celsius",
	"°c":        "celsius",
	"degrees c": "celsius",
	"degree c":  "celsius",
	"deg c":     "celsius",
}

// caseAliases resolve single letters whose meaning depends on case. A bare
// "c" stays a cup, never celsius.
var caseAliases = map[string]string{
	"T": "tablespoon",
	"t": "teaspoon",
}

// Canonical resolves a unit spelling to its canonical name.
func Canonical(name string) (string, bool) {
	trimmed := strings.TrimSpace(name)
	if u, ok := caseAliases[trimmed]; ok {
		return u, true
	}
	u, ok := aliases[normalize(trimmed)]
	return u, ok
}

func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

var metricUnits = map[string]bool{
	"milliliter": true,
	"liter":      true,
	"gram":       true,
	"kilogram":   true,
	"celsius":    true,
}

// IsMetric reports whether a unit name or alias refers to a metric unit.
func IsMetric(name string) bool {
	u, ok := Canonical(name)
	return ok && metricUnits[u]
}

// KindOf reports the measurement kind of a unit name or alias.
func KindOf(name string) Kind {
	u, ok := Canonical(name)
	if !ok {
		return KindUnknown
	}
	if _, ok := mlPerUnit[u]; ok {
		return KindVolume
	}
	if _, ok := gramsPerUnit[u]; ok {
		return KindWeight
	}
	return KindTemperature
}

// ToMilliliters converts an amount of a volume unit to milliliters.
func ToMilliliters(amount float64, unit string) (float64, error) {
	factor, err := volumeFactor(unit)
	if err != nil {
		return 0, err
	}
	return amount * factor, nil
}

// FromMilliliters converts milliliters to an amount of a volume unit.
func FromMilliliters(ml float64, unit string) (float64, error) {
	factor, err := volumeFactor(unit)
	if err != nil {
		return 0, err
	}
	return ml / factor, nil
}

// ToGrams converts an amount of a weight unit to grams.
func ToGrams(amount float64, unit string) (float64, error) {
	factor, err := weightFactor(unit)
	if err != nil {
		return 0, err
	}
	return amount * factor, nil
}

// FromGrams converts grams to an amount of a weight unit.
func FromGrams(grams float64, unit string) (float64, error) {
	factor, err := weightFactor(unit)
	if err != nil {
		return 0, err
	}
	return grams / factor, nil
}

func volumeFactor(unit string) (float64, error) {
	u, ok := Canonical(unit)
	if !ok {
		return 0, fmt.Errorf("unknown unit %q (valid units: %s)", unit, strings.Join(Names(), ", "))
	}
	factor, ok := mlPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("%q is not a volume unit (valid: %s)", unit, strings.Join(names(mlPerUnit), ", "))
	}
	return factor, nil
}

func weightFactor(unit string) (float64, error) {
	u, ok := Canonical(unit)
	if !ok {
		return 0, fmt.Errorf("unknown unit %q (valid units: %s)", unit, strings.Join(Names(), ", "))
	}
	factor, ok := gramsPerUnit[u]
	if !ok {
		return 0, fmt.Errorf("%q is not a weight unit (valid: %s)", unit, strings.Join(names(gramsPerUnit), ", "))
	}
	return factor, nil
}

// Names returns all canonical unit names, sorted.
func Names() []string {
	all := append(names(mlPerUnit), names(gramsPerUnit)...)
	all = append(all, "fahrenheit", "celsius")
	sort.Strings(all)
	return all
}

func names(table map[string]float64) []string {
	out := make([]string, 0, len(table))
	for u := range table {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// FahrenheitToCelsius converts degrees Fahrenheit to Celsius.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// CelsiusToFahrenheit converts degrees Celsius to Fahrenheit.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FormatWeight formats grams into a human-readable metric weight.
func FormatWeight(grams float64) string {
	switch {
	case grams < 1:
		return fmt.Sprintf("%.0f mg", grams*1000)
	case grams < 1000:
		return fmt.Sprintf("%.0f g", grams)
	default:
		return fmt.Sprintf("%.2f kg", grams/1000)
	}
}

// FormatVolume formats milliliters into a human-readable metric volume.
func FormatVolume(ml float64) string {
	if ml < 1000 {
		return fmt.Sprintf("%.0f ml", ml)
	}
	return fmt.Sprintf("%.2f l", ml/1000)
}
