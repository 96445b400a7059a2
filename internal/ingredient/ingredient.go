// Package ingredient maps ingredient names to densities so volume amounts
// can be converted to weight.
package ingredient

import (
	"sort"
	"strings"
)

// mlPerCup matches the volume table used for conversions.
const mlPerCup = 236.588

type entry struct {
	name        string
	gramsPerCup float64
}

// defaultDensities holds grams per US cup for common baking ingredients.
var defaultDensities = []struct {
	name        string
	gramsPerCup float64
	aliases     []string
}{
	{"all-purpose flour", 120, []string{"flour", "ap flour", "plain flour"}},
	{"bread flour", 127, nil},
	{"cake flour", 100, nil},
	{"whole wheat flour", 130, []string{"wholemeal flour"}},
	{"granulated sugar", 200, []string{"sugar", "white sugar", "caster sugar"}},
	{"brown sugar", 220, []string{"light brown sugar", "dark brown sugar"}},
	{"powdered sugar", 120, []string{"confectioners sugar", "confectioner's sugar", "icing sugar"}},
	{"butter", 227, []string{"unsalted butter", "salted butter"}},
	{"vegetable oil", 218, []string{"canola oil"}},
	{"olive oil", 216, nil},
	{"milk", 240, []string{"whole milk"}},
	{"heavy cream", 238, []string{"whipping cream", "double cream"}},
	{"water", 237, nil},
	{"salt", 288, []string{"table salt", "kosher salt"}},
	{"baking powder", 192, nil},
	{"baking soda", 220, []string{"bicarbonate of soda"}},
	{"cocoa powder", 100, []string{"cocoa", "unsweetened cocoa powder"}},
	{"rice", 185, []string{"white rice", "long-grain rice"}},
}

// Catalog resolves ingredient names to densities. Lookups are insensitive to
// case, dashes, and underscores. Custom entries shadow the built-in table.
type Catalog struct {
	entries map[string]entry  // keyed by normalized name
	aliases map[string]string // normalized alias -> normalized canonical name
}

// NewCatalog builds a catalog holding the built-in density table.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: make(map[string]entry, len(defaultDensities)),
		aliases: make(map[string]string),
	}
	for _, d := range defaultDensities {
		c.AddIngredient(d.name, d.gramsPerCup, d.aliases)
	}
	return c
}

// AddIngredient registers an ingredient density (grams per cup), replacing
// any previous entry with the same normalized name.
func (c *Catalog) AddIngredient(name string, gramsPerCup float64, aliases []string) {
	key := normalize(name)
	c.entries[key] = entry{name: name, gramsPerCup: gramsPerCup}
	for _, a := range aliases {
		c.aliases[normalize(a)] = key
	}
}

// GramsPerCup returns the density for an ingredient name. Lookup tries the
// exact normalized name, then aliases, then the longest known name occurring
// in the query as a whole-word phrase, so "all-purpose flour, sifted" still
// resolves while "watermelon" stays unknown rather than matching water.
func (c *Catalog) GramsPerCup(name string) (float64, bool) {
	n := normalize(name)
	if e, ok := c.entries[n]; ok {
		return e.gramsPerCup, true
	}
	if canonical, ok := c.aliases[n]; ok {
		return c.entries[canonical].gramsPerCup, true
	}

	best, bestLen := "", 0
	for key := range c.entries {
		if containsPhrase(n, key) && len(key) > bestLen {
			best, bestLen = key, len(key)
		}
	}
	for alias, canonical := range c.aliases {
		if containsPhrase(n, alias) && len(alias) > bestLen {
			best, bestLen = canonical, len(alias)
		}
	}
	if best == "" {
		return 0, false
	}
	return c.entries[best].gramsPerCup, true
}

// GramsPerMilliliter returns the density scaled to milliliters.
func (c *Catalog) GramsPerMilliliter(name string) (float64, bool) {
	d, ok := c.GramsPerCup(name)
	if !ok {
		return 0, false
	}
	return d / mlPerCup, true
}

// Names returns the display names of all known ingredients, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}

// containsPhrase reports whether phrase occurs in s on word boundaries,
// never inside a larger word.
func containsPhrase(s, phrase string) bool {
	return strings.Contains(" "+s+" ", " "+phrase+" ")
}

func normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, ",", " ")
	return strings.Join(strings.Fields(s), " ")
}
