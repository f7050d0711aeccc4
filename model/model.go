package model

import "encoding/json"

// Parameter describes a single parameter of an API endpoint.
type Parameter struct {
	Name        string `json:"name"`
	In          string `json:"in"`
	Required    bool   `json:"required,omitempty"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

// Endpoint describes one callable unit of an external API.
type Endpoint struct {
	ID          string      `json:"id"`
	Method      string      `json:"method"`
	Path        string      `json:"path"`
	Summary     string      `json:"summary,omitempty"`
	Description string      `json:"description,omitempty"`
	Parameters  []Parameter `json:"parameters,omitempty"`
}

// ConditionalLogic carries the free-text condition attached to a step.
type ConditionalLogic struct {
	Condition string `json:"condition"`
}

// WorkflowStep is one ordered endpoint invocation inside a workflow.
type WorkflowStep struct {
	ID               string            `json:"id"`
	EndpointID       string            `json:"endpointId"`
	Order            int               `json:"order"`
	Reasoning        string            `json:"reasoning"`
	Parameters       map[string]string `json:"parameters"`
	ConditionalLogic *ConditionalLogic `json:"conditionalLogic"`
}

// Workflow is an ordered sequence of endpoint invocations tied to a source spec.
type Workflow struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Steps       []WorkflowStep `json:"steps"`
	SpecID      string         `json:"specId"`
}

// AIReasoning pairs an endpoint with the model's justification for selecting it.
type AIReasoning struct {
	EndpointID string `json:"endpointId"`
	Reasoning  string `json:"reasoning"`
}

// SuggestedFlow is one candidate workflow idea produced by the suggestion operation.
type SuggestedFlow struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UseCase     string   `json:"useCase"`
	Endpoints   []string `json:"endpoints"`
	Category    string   `json:"category"`
	Complexity  string   `json:"complexity"`
}

// BuiltWorkflow is one workflow assembled by the composition operation. The
// nested workflow object is kept opaque so unknown fields survive untouched.
type BuiltWorkflow struct {
	FlowID          string         `json:"flow_id"`
	Workflow        map[string]any `json:"workflow"`
	AppliedPatterns []string       `json:"applied_patterns"`
}

// GenerateWorkflowRequest asks for a workflow built from a natural language description.
type GenerateWorkflowRequest struct {
	Description string     `json:"description"`
	Endpoints   []Endpoint `json:"endpoints"`
	SpecID      string     `json:"specId"`
}

// GenerateWorkflowResponse is the translated result of the endpoint-selection operation.
type GenerateWorkflowResponse struct {
	Workflow    Workflow      `json:"workflow"`
	Explanation string        `json:"explanation"`
	AIReasoning []AIReasoning `json:"aiReasoning"`
}

// SuggestFlowsRequest asks for candidate workflow ideas over a set of endpoints.
type SuggestFlowsRequest struct {
	Endpoints []Endpoint `json:"endpoints"`
	SpecID    string     `json:"specId"`
}

// SuggestFlowsResponse carries the model's suggestions plus a summary of the API.
type SuggestFlowsResponse struct {
	SuggestedFlows []SuggestedFlow `json:"suggestedFlows"`
	APISummary     string          `json:"apiSummary"`
	SpecID         string          `json:"specId"`
}

// LearnPatternRequest asks for the organizational pattern of a reference workflow.
type LearnPatternRequest struct {
	ReferenceWorkflow  Workflow   `json:"referenceWorkflow"`
	ReferenceEndpoints []Endpoint `json:"referenceEndpoints"`
}

// LearnPatternResponse holds the extracted pattern. The patterns block is an
// opaque passthrough: this service never interprets its internal shape.
type LearnPatternResponse struct {
	Patterns   json.RawMessage `json:"patterns"`
	Confidence float64         `json:"confidence"`
}

// AutoBuildRequest asks for complete workflows built from suggestions and a
// previously extracted pattern.
type AutoBuildRequest struct {
	SuggestedFlows  []SuggestedFlow `json:"suggestedFlows"`
	LearnedPatterns json.RawMessage `json:"learnedPatterns"`
	Endpoints       []Endpoint      `json:"endpoints"`
	SpecID          string          `json:"specId"`
}

// AutoBuildResponse carries the assembled workflows.
type AutoBuildResponse struct {
	Workflows []BuiltWorkflow `json:"workflows"`
}
