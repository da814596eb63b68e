package compiler

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/sarchlab/sramgen/sram"
)

//go:embed sram_configs.json
var configTemplates []byte

// TemplateNames returns the names of the built-in example configurations
// in alphabetical order.
func TemplateNames() []string {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(configTemplates, &raw); err != nil {
		panic(err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// TemplateConfig returns the built-in example configuration with the given
// name, validated the same way as any other configuration.
func TemplateConfig(name string) (sram.Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(configTemplates, &raw); err != nil {
		panic(err)
	}

	rec, ok := raw[name]
	if !ok {
		return sram.Config{}, fmt.Errorf(
			"unknown configuration template %q, available: %v",
			name, TemplateNames())
	}

	return sram.DecodeConfig(rec)
}
