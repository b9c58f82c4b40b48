package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"

	"datesieve/internal/platform/config"

	docs "datesieve/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

var mutators []SpecMutator

// docReader is a seam so tests can feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator; call it from module init
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// defaultResponses are injected into every operation that does not declare them
var defaultResponses = map[string]map[string]any{
	"400": errorResponse("Bad Request", 400, "validation", "format must name a known date format"),
	"500": errorResponse("Internal Server Error", 500, "panic", "panic recovered"),
}

func errorResponse(status string, code int, errCode, msg string) map[string]any {
	return map[string]any{
		"description": status,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": code,
					"status":      status,
					"code":        errCode,
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		normalizeVersion(spec, "/api/v1")

		if v := config.App().Prefix("API_").MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorSchema(spec)
		eachOperation(spec, func(op map[string]any) {
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			for status, resp := range defaultResponses {
				if _, exists := resps[status]; !exists {
					resps[status] = resp
				}
			}
		})

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// normalizeVersion pins the document to OAS 3.0.3 and fills servers
// the bundled swagger ui cannot render 3.1
func normalizeVersion(spec map[string]any, url string) {
	delete(spec, "swagger")
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorSchema adds the error envelope model unless the document has one
func ensureErrorSchema(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	str := map[string]any{"type": "string"}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      str,
			"code": map[string]any{
				"type": "string",
				"enum": []any{
					"unknown", "panic", "unavailable", "invalid_argument", "validation",
					"json", "not_found", "no_match", "unknown_format", "normalization",
				},
			},
			"error":      str,
			"field":      str,
			"request_id": str,
		},
		"required": []any{"status_code", "status"},
	}
}

func eachOperation(spec map[string]any, fn func(op map[string]any)) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			if op, ok := opAny.(map[string]any); ok {
				fn(op)
			}
		}
	}
}
