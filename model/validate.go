package model

import (
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateDocument runs JSON-Schema validation of a decoded JSON document
// against the given schema source. The name only labels compile errors.
func ValidateDocument(name, schemaJSON string, doc any) error {
	schema, err := jsonschema.CompileString(name, schemaJSON)
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}
