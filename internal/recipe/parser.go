// Package recipe parses ingredient lines and rewrites recipe text between
// US customary and metric measurements.
package recipe

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pantryworks/recipe-converter/internal/units"
)

// Measurement is a parsed ingredient or temperature line.
type Measurement struct {
	Amount     float64
	Unit       string // canonical unit name
	Ingredient string
}

// amountRe matches a leading amount: mixed number, fraction, or decimal, in
// that order so "1 1/2" is not read as "1".
var amountRe = regexp.MustCompile(`^\s*(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\s*(.*)$`)

// ParseLine parses a line of the form "AMOUNT UNIT [name]". Lines that do
// not start with an amount followed by a known unit are not measurements.
func ParseLine(line string) (Measurement, bool) {
	m := amountRe.FindStringSubmatch(line)
	if m == nil {
		return Measurement{}, false
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return Measurement{}, false
	}

	// The unit may span two words ("fluid ounce", "degrees f"); try the
	// longer spelling first.
	fields := strings.Fields(m[2])
	for k := min(2, len(fields)); k > 0; k-- {
		unit, ok := units.Canonical(strings.Join(fields[:k], " "))
		if !ok {
			continue
		}
		return Measurement{
			Amount:     amount,
			Unit:       unit,
			Ingredient: cleanName(strings.Join(fields[k:], " ")),
		}, true
	}
	return Measurement{}, false
}

func parseAmount(s string) (float64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 2 {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	}
	if strings.Contains(s, "/") {
		return parseFraction(s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

func parseFraction(s string) (float64, bool) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, false
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

func cleanName(name string) string {
	name = strings.TrimPrefix(name, "of ")
	name = strings.TrimSuffix(name, ",")
	return strings.TrimSpace(name)
}
