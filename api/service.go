package api

import (
	"context"

	"github.com/magoc/flowgen/completion"
	"github.com/magoc/flowgen/model"
)

// WorkflowService defines the four workflow-generation operations.
type WorkflowService interface {
	GenerateWorkflow(ctx context.Context, req *model.GenerateWorkflowRequest) (*model.GenerateWorkflowResponse, error)
	SuggestFlows(ctx context.Context, req *model.SuggestFlowsRequest) (*model.SuggestFlowsResponse, error)
	LearnPattern(ctx context.Context, req *model.LearnPatternRequest) (*model.LearnPatternResponse, error)
	AutoBuildFlows(ctx context.Context, req *model.AutoBuildRequest) (*model.AutoBuildResponse, error)
}

// defaultService is the default implementation of WorkflowService. It obtains
// its completion client through an injected accessor so the client is built
// lazily and tests can substitute a fake.
type defaultService struct {
	source func() (completion.Completer, error)
}

// Compile-time check.
var _ WorkflowService = (*defaultService)(nil)

// NewWorkflowService returns a service backed by the shared process-wide
// completion client, constructed from the environment on first use.
func NewWorkflowService() WorkflowService {
	return &defaultService{source: completion.Default}
}

// NewWorkflowServiceWithSource returns a service using the given client accessor.
func NewWorkflowServiceWithSource(source func() (completion.Completer, error)) WorkflowService {
	return &defaultService{source: source}
}

// NewWorkflowServiceWith returns a service bound to a fixed completion client.
func NewWorkflowServiceWith(c completion.Completer) WorkflowService {
	return &defaultService{source: func() (completion.Completer, error) { return c, nil }}
}
