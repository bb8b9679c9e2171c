package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema is the JSON schema for an external corpus file: an array of
// {text, principles, verdict} records. Taxonomy membership is checked
// separately by Validate, so the schema only pins the shape and the
// verdict enum.
var fileSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{
				"type":      "string",
				"minLength": 1,
			},
			"principles": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string"},
			},
			"verdict": map[string]any{
				"type": "string",
				"enum": []any{"ethical", "unethical", "ambiguous"},
			},
		},
		"required":             []any{"text", "principles", "verdict"},
		"additionalProperties": false,
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func corpusSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so round-trip
		// the definition through encoding/json first.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://corpus.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}

// LoadFile reads a corpus from a JSON file, checks it against the corpus
// schema, and validates every example against the taxonomy.
func LoadFile(path string) ([]Example, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus file: %w", err)
	}
	return loadJSON(raw)
}

func loadJSON(raw []byte) ([]Example, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := corpusSchema()
	if err != nil {
		return nil, fmt.Errorf("compile corpus schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("corpus schema validation failed: %w", err)
	}

	var examples []Example
	if err := json.Unmarshal(raw, &examples); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}
	if err := Validate(examples); err != nil {
		return nil, err
	}
	return examples, nil
}
