package recipe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pantryworks/recipe-converter/internal/ingredient"
	"github.com/pantryworks/recipe-converter/internal/units"
)

// Direction selects the target measurement system.
type Direction string

const (
	ToMetric Direction = "metric"
	ToUS     Direction = "us"
)

// ConvertText rewrites every convertible measurement line of a recipe and
// returns the new text plus the number of lines converted. Lines that are
// not measurements, are already in the target system, or need a density the
// catalog does not know pass through unchanged.
func ConvertText(text string, cat *ingredient.Catalog, dir Direction) (string, int) {
	lines := strings.Split(text, "\n")
	converted := 0
	for i, line := range lines {
		out, ok := ConvertLine(line, cat, dir)
		if !ok {
			continue
		}
		lines[i] = out
		converted++
	}
	return strings.Join(lines, "\n"), converted
}

// ConvertLine rewrites a single measurement line, keeping the ingredient
// name after the converted amount.
func ConvertLine(line string, cat *ingredient.Catalog, dir Direction) (string, bool) {
	m, ok := ParseLine(line)
	if !ok {
		return line, false
	}

	var amount string
	if dir == ToUS {
		amount, ok = toUS(m, cat)
	} else {
		amount, ok = toMetric(m, cat)
	}
	if !ok {
		return line, false
	}
	if m.Ingredient == "" {
		return amount, true
	}
	return amount + " " + m.Ingredient, true
}

// toMetric converts US volume to weight via ingredient density, US weight to
// grams, and Fahrenheit to Celsius.
func toMetric(m Measurement, cat *ingredient.Catalog) (string, bool) {
	if units.IsMetric(m.Unit) {
		return "", false
	}
	switch units.KindOf(m.Unit) {
	case units.KindVolume:
		density, ok := cat.GramsPerMilliliter(m.Ingredient)
		if !ok {
			return "", false
		}
		ml, err := units.ToMilliliters(m.Amount, m.Unit)
		if err != nil {
			return "", false
		}
		return units.FormatWeight(ml * density), true
	case units.KindWeight:
		grams, err := units.ToGrams(m.Amount, m.Unit)
		if err != nil {
			return "", false
		}
		return units.FormatWeight(grams), true
	case units.KindTemperature:
		return fmt.Sprintf("%.0f°C", units.FahrenheitToCelsius(m.Amount)), true
	}
	return "", false
}

// toUS converts metric weight back to volume when the density is known (to
// ounces and pounds otherwise), metric volume to cups, and Celsius to
// Fahrenheit.
func toUS(m Measurement, cat *ingredient.Catalog) (string, bool) {
	if !units.IsMetric(m.Unit) {
		return "", false
	}
	switch units.KindOf(m.Unit) {
	case units.KindVolume:
		ml, err := units.ToMilliliters(m.Amount, m.Unit)
		if err != nil {
			return "", false
		}
		return formatUSVolume(ml), true
	case units.KindWeight:
		grams, err := units.ToGrams(m.Amount, m.Unit)
		if err != nil {
			return "", false
		}
		if density, ok := cat.GramsPerMilliliter(m.Ingredient); ok && m.Ingredient != "" {
			return formatUSVolume(grams / density), true
		}
		return formatUSWeight(grams), true
	case units.KindTemperature:
		return fmt.Sprintf("%.0f°F", units.CelsiusToFahrenheit(m.Amount)), true
	}
	return "", false
}

// formatUSVolume picks the largest US volume unit that reads naturally.
func formatUSVolume(ml float64) string {
	if cups, _ := units.FromMilliliters(ml, "cup"); cups >= 0.25 {
		return formatUSAmount(cups, "cup")
	}
	if tbsp, _ := units.FromMilliliters(ml, "tablespoon"); tbsp >= 1 {
		return formatUSAmount(tbsp, "tablespoon")
	}
	tsp, _ := units.FromMilliliters(ml, "teaspoon")
	return formatUSAmount(tsp, "teaspoon")
}

func formatUSWeight(grams float64) string {
	if lb, _ := units.FromGrams(grams, "pound"); lb >= 1 {
		return formatUSAmount(lb, "pound")
	}
	oz, _ := units.FromGrams(grams, "ounce")
	return formatUSAmount(oz, "ounce")
}

// formatUSAmount renders a two-decimal amount with trailing zeros trimmed
// and the unit pluralized.
func formatUSAmount(v float64, unit string) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s != "1" {
		unit += "s"
	}
	return s + " " + unit
}
