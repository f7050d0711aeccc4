package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// completeObject runs the shared pipeline stage every operation passes
// through: obtain the client, issue the single completion call, parse the
// returned text as a JSON object, and assert the operation's required
// top-level field. It returns the raw object text for the caller to translate.
func (s *defaultService) completeObject(ctx context.Context, instructions, data, requiredField string, wantArray bool) ([]byte, error) {
	client, err := s.source()
	if err != nil {
		return nil, err
	}

	raw, err := client.CompleteJSON(ctx, instructions, data)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("model returned malformed JSON: %w", err)
	}
	if err := requireField(doc, requiredField, wantArray); err != nil {
		return nil, err
	}
	return []byte(raw), nil
}

// requireField checks that the named top-level field exists and is a
// non-empty array or an object, mirroring what each operation's instruction
// block demands of the model.
func requireField(doc map[string]json.RawMessage, field string, wantArray bool) error {
	kind := "object"
	if wantArray {
		kind = "array"
	}
	raw, ok := doc[field]
	if !ok {
		return fmt.Errorf("%w: model response is missing required '%s' %s", ErrSchemaViolation, field, kind)
	}
	if wantArray {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || len(items) == 0 {
			return fmt.Errorf("%w: model response is missing required '%s' %s", ErrSchemaViolation, field, kind)
		}
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) == 0 {
		return fmt.Errorf("%w: model response is missing required '%s' %s", ErrSchemaViolation, field, kind)
	}
	return nil
}
