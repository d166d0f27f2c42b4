// Schema Generator
//
// Generates JSON Schema files for the documents the service persists, so
// external consumers of the state files can validate them.
//
// Usage:
//
//	go run cmd/schema-gen/main.go
//
// Output:
//
//	./schemas/shopping-lists.json
//	./schemas/price-alerts.json
//	./schemas/settings.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/trolleywise/price-service/internal/appstate"
)

type schemaFile struct {
	Name string
	Type any
}

func main() {
	outputDir := "./schemas"

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	files := []schemaFile{
		{Name: "shopping-lists.json", Type: []appstate.ShoppingList{}},
		{Name: "price-alerts.json", Type: []appstate.PriceAlert{}},
		{Name: "settings.json", Type: appstate.AppSettings{}},
	}

	reflector := &jsonschema.Reflector{
		ExpandedStruct: false,
		DoNotReference: false,
	}

	for _, f := range files {
		schema := reflector.Reflect(f.Type)

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal schema %s: %v\n", f.Name, err)
			os.Exit(1)
		}

		path := filepath.Join(outputDir, f.Name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", path)
	}
}
