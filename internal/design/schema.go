// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package design

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// jointsSchemaJSON describes the accepted layout of joints.yaml. Locations
// are free strings: unknown categories are classified later, not rejected.
const jointsSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["joints"],
  "properties": {
    "joints": {
      "type": "object",
      "minProperties": 1,
      "additionalProperties": {
        "type": "object",
        "properties": {
          "actuated": {"type": "boolean"},
          "location": {"type": "string"},
          "axis": {"type": "string"},
          "variants": {
            "type": "object",
            "additionalProperties": {"type": "boolean"}
          }
        }
      }
    }
  }
}`

var jointsSchema = compileSchema("joints.schema.json", jointsSchemaJSON)

func compileSchema(url, src string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, strings.NewReader(src)); err != nil {
		panic(fmt.Sprintf("adding schema %s: %v", url, err))
	}
	return compiler.MustCompile(url)
}

// validateAgainst checks a YAML-decoded document against schema. The value
// is round-tripped through JSON so the validator sees JSON-native types.
func validateAgainst(schema *jsonschema.Schema, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("converting document for schema validation: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decoding document for schema validation: %w", err)
	}

	if err := schema.Validate(v); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return formatValidationError(verr)
		}
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// formatValidationError flattens the cause tree into one message per leaf.
func formatValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("schema validation failed")
	}
	return fmt.Errorf("schema validation failed:\n    - %s", strings.Join(messages, "\n    - "))
}
