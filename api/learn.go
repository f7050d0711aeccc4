package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/model"
	"github.com/magoc/flowgen/prompt"
)

// learnedPatternResult is the JSON object the pattern-extraction instruction
// block asks the model to return. The patterns block stays raw: its internal
// shape is advisory and never interpreted here.
type learnedPatternResult struct {
	Patterns   json.RawMessage `json:"patterns"`
	Confidence *float64        `json:"confidence"`
}

// LearnPattern extracts the organizational pattern of a reference workflow.
// The returned patterns object is forwarded opaquely; a missing confidence
// defaults to 0.8.
func (s *defaultService) LearnPattern(ctx context.Context, req *model.LearnPatternRequest) (*model.LearnPatternResponse, error) {
	raw, err := s.completeObject(ctx,
		prompt.LearnPatternInstructions,
		prompt.LearnPatternData(req.ReferenceWorkflow, req.ReferenceEndpoints),
		"patterns", false)
	if err != nil {
		return nil, err
	}

	var out learnedPatternResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: unexpected 'patterns' shape: %v", ErrSchemaViolation, err)
	}

	confidence := float64(constants.DefaultConfidence)
	if out.Confidence != nil {
		confidence = *out.Confidence
	}

	return &model.LearnPatternResponse{
		Patterns:   out.Patterns,
		Confidence: confidence,
	}, nil
}
