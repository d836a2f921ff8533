package vision

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/closingdesk/contract-extract/internal/schema"
)

// BuildGroupJSONSchema returns a JSON-Schema (draft 2020-12 subset) for one
// field group as a generic map. It is sent to the inference service as the
// structured-output constraint and used locally to validate the response.
// Every field is optional on the wire: a field the model omits simply
// receives no attempt.
func BuildGroupJSONSchema(specs []schema.FieldSpec) map[string]any {
	props := make(map[string]any, len(specs))
	for _, f := range specs {
		props[f.Name] = propFor(f)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func propFor(f schema.FieldSpec) map[string]any {
	switch f.Type {
	case schema.TypeNumber:
		// models return amounts both ways; the schema validator normalizes
		return map[string]any{"type": []string{"number", "string"}}
	case schema.TypeDate:
		return map[string]any{"type": "string", "minLength": 1}
	case schema.TypeBoolean:
		return map[string]any{"type": []string{"boolean", "string"}}
	case schema.TypeEnum:
		return map[string]any{"type": "string", "enum": f.Options}
	case schema.TypeArray:
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	default:
		return map[string]any{"type": "string"}
	}
}

// ValidateJSONAgainstSchema validates a JSON document against a schema map.
func ValidateJSONAgainstSchema(schemaMap map[string]any, doc []byte) error {
	sb, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(sb)); err != nil {
		return fmt.Errorf("add schema resource: %w", err)
	}
	sch, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(doc, &v); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return sch.Validate(v)
}
