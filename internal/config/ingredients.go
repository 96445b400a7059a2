package config

import "fmt"

// IngredientEntry adds or overrides a density in the built-in table.
type IngredientEntry struct {
	Name        string   `koanf:"name"`
	GramsPerCup float64  `koanf:"grams_per_cup"`
	Aliases     []string `koanf:"aliases"`
}

// Ingredients carries user-supplied density entries merged into the
// ingredient database at startup.
type Ingredients struct {
	Custom []IngredientEntry `koanf:"custom"`
}

func (i *Ingredients) Validate() error {
	for idx, e := range i.Custom {
		if e.Name == "" {
			return fmt.Errorf("ingredients.custom[%d].name is required", idx)
		}
		if e.GramsPerCup <= 0 {
			return fmt.Errorf("ingredients.custom[%d].grams_per_cup must be > 0", idx)
		}
	}
	return nil
}
