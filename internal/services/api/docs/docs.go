// Package docs registers the OpenAPI document for the datesieve API with swag
// The template is maintained by hand next to the handler annotations
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "tags": [
    {"name": "Dates", "description": "date recognition and normalization"},
    {"name": "Meta", "description": "health and build info"}
  ],
  "paths": {
    "/dates/formats": {
      "get": {
        "tags": ["Dates"],
        "summary": "Date format catalog in scan order",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/FormatRow"}}}}}}
      }
    },
    "/dates/find": {
      "post": {
        "tags": ["Dates"],
        "summary": "Find every date in a text",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FindInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Date"}}}}}}
      }
    },
    "/dates/first": {
      "post": {
        "tags": ["Dates"],
        "summary": "Most specific date in a text",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FormatInput"}}}},
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Date"}}}},
          "404": {"description": "no date", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/dates/parse": {
      "post": {
        "tags": ["Dates"],
        "summary": "Parse a text that is exactly one date",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/FormatInput"}}}},
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Date"}}}},
          "404": {"description": "no format matches", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}},
          "422": {"description": "matched but not a valid date", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/dates/relative": {
      "post": {
        "tags": ["Dates"],
        "summary": "Resolve N units ago",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/RelativeInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Date"}}}}}
      }
    },
    "/dates/interval": {
      "post": {
        "tags": ["Dates"],
        "summary": "Sum a duration phrase",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TextInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/IntervalOutput"}}}}}
      }
    },
    "/dates/diff": {
      "post": {
        "tags": ["Dates"],
        "summary": "Difference between two dates at their common precision",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DiffInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DiffOutput"}}}}}
      }
    },
    "/dates/batch": {
      "post": {
        "tags": ["Dates"],
        "summary": "Find dates in many documents",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BatchInput"}}}},
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/BatchResult"}}}}}}
      }
    },
    "/meta/health": {"get": {"tags": ["Meta"], "summary": "Health check", "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"tags": ["Meta"], "summary": "Readiness probe with catalog and self test checks", "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"tags": ["Meta"], "summary": "Build and version info", "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"tags": ["Meta"], "summary": "Service info and uptime", "responses": {"200": {"description": "ok"}}}},
    "/meta/engine": {"get": {"tags": ["Meta"], "summary": "Catalog size per rank and build", "responses": {"200": {"description": "ok"}}}}
  },
  "components": {
    "schemas": {
      "Date": {
        "type": "object",
        "properties": {
          "text": {"type": "string", "example": "Tue, 02 Jul 2010 19:07:49 GMT"},
          "format": {"type": "string", "example": "RFC_1123"},
          "normalized": {"type": "string", "example": "2010-07-02 19:07:49"},
          "exactness": {"type": "string", "enum": ["UNSET", "YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND"]},
          "year": {"type": "integer"},
          "month": {"type": "integer"},
          "day": {"type": "integer"},
          "hour": {"type": "integer"},
          "minute": {"type": "integer"},
          "second": {"type": "integer"},
          "zone": {"type": "string", "example": "GMT"},
          "unix_ms": {"type": "integer", "format": "int64"}
        }
      },
      "FormatRow": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "ISO8601_YMD"},
          "layout": {"type": "string", "example": "YYYY-MM-DD"},
          "rank": {"type": "string", "enum": ["context", "partial", "date", "datetime", "stamp"]}
        }
      },
      "TextInput": {
        "type": "object",
        "required": ["text"],
        "properties": {"text": {"type": "string", "example": "4 hrs 20 mins"}}
      },
      "FindInput": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "example": "posted 2010-07-02, updated 3 Aug 2010"},
          "formats": {"type": "array", "items": {"type": "string"}}
        }
      },
      "FormatInput": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "example": "Tue, 02 Jul 2010 19:07:49 GMT"},
          "format": {"type": "string", "example": "RFC_1123"}
        }
      },
      "RelativeInput": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text": {"type": "string", "example": "4 months ago"},
          "reference": {"type": "string", "example": "2010-12-01T11:00:00Z"},
          "reference_ms": {"type": "integer", "format": "int64", "example": 1291201200000}
        }
      },
      "IntervalOutput": {
        "type": "object",
        "properties": {
          "seconds": {"type": "number", "example": 15600},
          "duration": {"type": "string", "example": "4h20m0s"}
        }
      },
      "DiffInput": {
        "type": "object",
        "required": ["a", "b"],
        "properties": {
          "a": {"type": "string", "example": "2010-07-02 19:07"},
          "b": {"type": "string", "example": "2010-07-01"},
          "unit": {"type": "string", "enum": ["second", "minute", "hour", "day"]}
        }
      },
      "DiffOutput": {
        "type": "object",
        "properties": {
          "a": {"$ref": "#/components/schemas/Date"},
          "b": {"$ref": "#/components/schemas/Date"},
          "unit": {"type": "string"},
          "exactness": {"type": "string"},
          "value": {"type": "number"}
        }
      },
      "BatchInput": {
        "type": "object",
        "required": ["documents"],
        "properties": {
          "documents": {
            "type": "array",
            "items": {
              "type": "object",
              "properties": {"id": {"type": "string"}, "text": {"type": "string"}}
            }
          },
          "formats": {"type": "array", "items": {"type": "string"}}
        }
      },
      "BatchResult": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "dates": {"type": "array", "items": {"$ref": "#/components/schemas/Date"}}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "datesieve API",
	Description:      "Find, parse and normalize dates in free text",
	InfoInstanceName: "api",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
