package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/magoc/flowgen/model"
	"github.com/magoc/flowgen/prompt"
)

// builtWorkflowsResult is the JSON object the composition instruction block
// asks the model to return.
type builtWorkflowsResult struct {
	Workflows []model.BuiltWorkflow `json:"workflows"`
}

// AutoBuildFlows asks the model to apply a previously extracted pattern to
// each suggested flow. Workflow items pass through unchanged except that a
// nested workflow object lacking a specId gets the caller's injected.
func (s *defaultService) AutoBuildFlows(ctx context.Context, req *model.AutoBuildRequest) (*model.AutoBuildResponse, error) {
	raw, err := s.completeObject(ctx,
		prompt.AutoBuildInstructions,
		prompt.AutoBuildData(req.SuggestedFlows, req.LearnedPatterns, req.Endpoints),
		"workflows", true)
	if err != nil {
		return nil, err
	}

	var out builtWorkflowsResult
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: unexpected 'workflows' shape: %v", ErrSchemaViolation, err)
	}

	for i := range out.Workflows {
		wf := out.Workflows[i].Workflow
		if wf == nil {
			continue
		}
		if _, ok := wf["specId"]; !ok {
			wf["specId"] = req.SpecID
		}
	}

	return &model.AutoBuildResponse{Workflows: out.Workflows}, nil
}
