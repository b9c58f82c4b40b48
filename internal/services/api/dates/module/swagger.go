package module

import (
	"datesieve/internal/core/dateformat"
	"datesieve/internal/modkit/swaggerkit"
)

// formatEnum lists the catalog names on every format field of the served spec
func formatEnum(cat *dateformat.Catalog) swaggerkit.SpecMutator {
	enum := make([]any, 0, cat.Len())
	for _, d := range cat.All() {
		enum = append(enum, string(d.Name))
	}
	return func(spec map[string]any) {
		comps, _ := spec["components"].(map[string]any)
		schemas, _ := comps["schemas"].(map[string]any)
		for _, name := range []string{"FindInput", "FormatInput", "BatchInput"} {
			schema, _ := schemas[name].(map[string]any)
			props, _ := schema["properties"].(map[string]any)
			if f, ok := props["format"].(map[string]any); ok {
				f["enum"] = enum
			}
			if fs, ok := props["formats"].(map[string]any); ok {
				if items, ok := fs["items"].(map[string]any); ok {
					items["enum"] = enum
				}
			}
		}
	}
}
