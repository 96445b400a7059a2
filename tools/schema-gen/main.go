package main

import (
	"flag"
	"log"
	"os"

	"github.com/pantryworks/recipe-converter/internal/hooks"
)

func main() {
	out := flag.String("o", "schema.json", "output path for the generated schema")
	flag.Parse()

	schemaBytes, err := hooks.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if err := os.WriteFile(*out, schemaBytes, 0o644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", *out)
}
