package store

import (
	"encoding/json"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema describes the persisted document layout. Violations are
// surfaced as warnings, not errors: the dashboard still opens on documents
// written by hand or by older versions.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["project", "tasks", "payments", "contacts"],
  "properties": {
    "schema_version": {"type": "integer", "minimum": 1},
    "project": {
      "type": "object",
      "required": ["name", "current_week"],
      "properties": {
        "name": {"type": "string"},
        "current_week": {"type": "integer", "minimum": 1},
        "total_weeks": {"type": "integer", "minimum": 1},
        "launch_date": {"type": "string"},
        "budget_total": {"type": "number", "minimum": 0},
        "currency": {"type": "string"}
      }
    },
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "week", "status", "priority"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "title": {"type": "string", "minLength": 1},
          "week": {"type": "integer"},
          "status": {"enum": ["not_started", "in_progress", "done"]},
          "priority": {"enum": ["low", "medium", "high"]},
          "assignee": {"type": "string"},
          "due_date": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    },
    "payments": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "payee", "amount"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "payee": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "amount": {"type": "number", "minimum": 0, "maximum": 10000000},
          "paid": {"type": "boolean"},
          "due_date": {"type": "string"},
          "note": {"type": "string"}
        }
      }
    },
    "contacts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "role": {"type": "string"},
          "email": {"type": "string"},
          "phone": {"type": "string"},
          "notes": {"type": "string"}
        }
      }
    }
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("document.schema.json", strings.NewReader(documentSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("document.schema.json")
}

// validateSchema checks raw document bytes against the schema and returns
// human-readable warnings, one per leaf violation.
func validateSchema(data []byte) []string {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{err.Error()}
	}

	if err := compiledSchema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return []string{err.Error()}
		}
		var warnings []string
		collectLeafErrors(ve, &warnings)
		return warnings
	}
	return nil
}

// collectLeafErrors walks the validation error tree and keeps only leaves,
// which carry the specific message for a field.
func collectLeafErrors(err *jsonschema.ValidationError, out *[]string) {
	if err == nil {
		return
	}
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+err.Message)
		return
	}
	for _, cause := range err.Causes {
		collectLeafErrors(cause, out)
	}
}
