package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/model"
	"github.com/magoc/flowgen/prompt"
)

// suggestedFlowsResult is the JSON object the suggestion instruction block
// asks the model to return.
type suggestedFlowsResult struct {
	SuggestedFlows []model.SuggestedFlow `json:"suggestedFlows"`
	APISummary     string                `json:"apiSummary"`
}

// SuggestFlows asks the model for 5-8 candidate workflow ideas over the
// supplied endpoints. The flow list passes through unchanged; a missing API
// summary gets a fixed placeholder.
func (s *defaultService) SuggestFlows(ctx context.Context, req *model.SuggestFlowsRequest) (*model.SuggestFlowsResponse, error) {
	raw, err := s.completeObject(ctx,
		prompt.SuggestFlowsInstructions,
		prompt.SuggestFlowsData(req.Endpoints),
		"suggestedFlows", true)
	if err != nil {
		return nil, err
	}

	var out suggestedFlowsResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: unexpected 'suggestedFlows' shape: %v", ErrSchemaViolation, err)
	}
	if out.APISummary == "" {
		out.APISummary = constants.DefaultAPISummary
	}

	return &model.SuggestFlowsResponse{
		SuggestedFlows: out.SuggestedFlows,
		APISummary:     out.APISummary,
		SpecID:         req.SpecID,
	}, nil
}
