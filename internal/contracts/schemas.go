package contracts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/listing/v1.json
var listingSchemaJSON string

var listingSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	const schemaPath = "schemas/listing/v1.json"
	if err := compiler.AddResource(schemaPath, strings.NewReader(listingSchemaJSON)); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", schemaPath, err)
	}

	schema, err := compiler.Compile(schemaPath)
	if err != nil {
		log.Fatalf("could not compile schema %s: %v", schemaPath, err)
	}

	listingSchema = schema
}

// ValidateListing проверяет одно "сырое" объявление по схеме.
// Возвращает nil, если объявление валидно.
func ValidateListing(raw json.RawMessage) error {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := listingSchema.Validate(value); err != nil {
		return err
	}

	return nil
}
