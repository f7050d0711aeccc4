package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/model"
	"github.com/magoc/flowgen/prompt"
)

// selectedEndpoint is one entry of the model's selectedEndpoints array.
type selectedEndpoint struct {
	EndpointID string            `json:"endpointId"`
	Order      int               `json:"order"`
	Reasoning  string            `json:"reasoning"`
	Parameters map[string]string `json:"parameters"`
	DependsOn  []string          `json:"dependsOn"`
}

// generatedWorkflow is the JSON object the endpoint-selection instruction
// block asks the model to return.
type generatedWorkflow struct {
	WorkflowName        string             `json:"workflowName"`
	WorkflowDescription string             `json:"workflowDescription"`
	SelectedEndpoints   []selectedEndpoint `json:"selectedEndpoints"`
	Explanation         string             `json:"explanation"`
}

// GenerateWorkflow turns a natural language description and an endpoint list
// into an ordered workflow. Endpoint selection and ordering are entirely the
// model's; this method only formats the prompt and reshapes the answer.
func (s *defaultService) GenerateWorkflow(ctx context.Context, req *model.GenerateWorkflowRequest) (*model.GenerateWorkflowResponse, error) {
	raw, err := s.completeObject(ctx,
		prompt.GenerateWorkflowInstructions,
		prompt.GenerateWorkflowData(req.Description, req.Endpoints),
		"selectedEndpoints", true)
	if err != nil {
		return nil, err
	}

	var out generatedWorkflow
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: unexpected 'selectedEndpoints' shape: %v", ErrSchemaViolation, err)
	}

	steps := make([]model.WorkflowStep, 0, len(out.SelectedEndpoints))
	reasoning := make([]model.AIReasoning, 0, len(out.SelectedEndpoints))
	for _, sel := range out.SelectedEndpoints {
		params := sel.Parameters
		if params == nil {
			params = map[string]string{}
		}
		var cond *model.ConditionalLogic
		if len(sel.DependsOn) > 0 {
			cond = &model.ConditionalLogic{
				Condition: constants.DependsOnPrefix + strings.Join(sel.DependsOn, ", "),
			}
		}
		steps = append(steps, model.WorkflowStep{
			ID:               fmt.Sprintf("%s%d", constants.StepIDPrefix, sel.Order),
			EndpointID:       sel.EndpointID,
			Order:            sel.Order,
			Reasoning:        sel.Reasoning,
			Parameters:       params,
			ConditionalLogic: cond,
		})
		reasoning = append(reasoning, model.AIReasoning{
			EndpointID: sel.EndpointID,
			Reasoning:  sel.Reasoning,
		})
	}

	return &model.GenerateWorkflowResponse{
		Workflow: model.Workflow{
			Name:        out.WorkflowName,
			Description: out.WorkflowDescription,
			Steps:       steps,
			SpecID:      req.SpecID,
		},
		Explanation: out.Explanation,
		AIReasoning: reasoning,
	}, nil
}
