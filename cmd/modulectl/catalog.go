package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dangerclosesec/modgate/internal/model"
)

//go:embed default_catalog.json
var defaultCatalog []byte

// loadCatalog reads module definitions from path, or the built-in catalog when
// path is empty.
func loadCatalog(path string) ([]model.Module, error) {
	data := defaultCatalog
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading catalog file: %w", err)
		}
		data = raw
	}

	var modules []model.Module
	if err := json.Unmarshal(data, &modules); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if _, dup := seen[m.Name]; dup {
			return nil, fmt.Errorf("duplicate module name %q", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return modules, nil
}
