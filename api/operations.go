package api

import (
	"context"
	"net/http"
	"reflect"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/docs"
	"github.com/magoc/flowgen/model"
)

// OperationDefinition describes one operation once; HTTP handlers and CLI
// commands are generated from it.
type OperationDefinition struct {
	ID          string                                                                // Unique identifier
	Name        string                                                                // Display name
	Description string                                                                // Human readable description
	HTTPMethod  string                                                                // HTTP method
	HTTPPath    string                                                                // HTTP path
	CLIUse      string                                                                // CLI command usage pattern
	CLIShort    string                                                                // CLI short description
	ArgsType    reflect.Type                                                          // Type for the request body
	Schema      string                                                                // JSON Schema the request body must satisfy
	FailureMsg  string                                                                // Prefix for server-error messages
	Handler     func(ctx context.Context, svc WorkflowService, args any) (any, error) // Core implementation
}

// Global operation registry
var operationRegistry = make(map[string]*OperationDefinition)

// RegisterOperation registers an operation definition.
func RegisterOperation(op *OperationDefinition) {
	operationRegistry[op.ID] = op
}

// GetOperation retrieves an operation by ID.
func GetOperation(id string) (*OperationDefinition, bool) {
	op, exists := operationRegistry[id]
	return op, exists
}

// GetAllOperations returns all registered operations.
func GetAllOperations() map[string]*OperationDefinition {
	return operationRegistry
}

// init registers the four core operations
func init() {
	RegisterOperation(&OperationDefinition{
		ID:          constants.OpGenerateWorkflow,
		Name:        "Generate Workflow",
		Description: "Generate a workflow from a natural language description",
		HTTPMethod:  http.MethodPost,
		HTTPPath:    constants.PathGenerateWorkflow,
		CLIUse:      "generate",
		CLIShort:    "Generate a workflow from a natural language description",
		ArgsType:    reflect.TypeOf(model.GenerateWorkflowRequest{}),
		Schema:      docs.GenerateWorkflowSchema,
		FailureMsg:  "Failed to generate workflow",
		Handler: func(ctx context.Context, svc WorkflowService, args any) (any, error) {
			return svc.GenerateWorkflow(ctx, args.(*model.GenerateWorkflowRequest))
		},
	})

	RegisterOperation(&OperationDefinition{
		ID:          constants.OpSuggestFlows,
		Name:        "Suggest Flows",
		Description: "Suggest practical workflows from an endpoint list",
		HTTPMethod:  http.MethodPost,
		HTTPPath:    constants.PathSuggestFlows,
		CLIUse:      "suggest",
		CLIShort:    "Suggest practical workflows from an endpoint list",
		ArgsType:    reflect.TypeOf(model.SuggestFlowsRequest{}),
		Schema:      docs.SuggestFlowsSchema,
		FailureMsg:  "Failed to suggest flows",
		Handler: func(ctx context.Context, svc WorkflowService, args any) (any, error) {
			return svc.SuggestFlows(ctx, args.(*model.SuggestFlowsRequest))
		},
	})

	RegisterOperation(&OperationDefinition{
		ID:          constants.OpLearnPattern,
		Name:        "Learn Pattern",
		Description: "Extract the reusable pattern of a reference workflow",
		HTTPMethod:  http.MethodPost,
		HTTPPath:    constants.PathLearnPattern,
		CLIUse:      "learn-pattern",
		CLIShort:    "Extract the reusable pattern of a reference workflow",
		ArgsType:    reflect.TypeOf(model.LearnPatternRequest{}),
		Schema:      docs.LearnPatternSchema,
		FailureMsg:  "Failed to learn pattern",
		Handler: func(ctx context.Context, svc WorkflowService, args any) (any, error) {
			return svc.LearnPattern(ctx, args.(*model.LearnPatternRequest))
		},
	})

	RegisterOperation(&OperationDefinition{
		ID:          constants.OpAutoBuildFlows,
		Name:        "Auto-Build Flows",
		Description: "Build complete workflows from suggestions and a learned pattern",
		HTTPMethod:  http.MethodPost,
		HTTPPath:    constants.PathAutoBuildFlows,
		CLIUse:      "auto-build",
		CLIShort:    "Build complete workflows from suggestions and a learned pattern",
		ArgsType:    reflect.TypeOf(model.AutoBuildRequest{}),
		Schema:      docs.AutoBuildSchema,
		FailureMsg:  "Failed to auto-build flows",
		Handler: func(ctx context.Context, svc WorkflowService, args any) (any, error) {
			return svc.AutoBuildFlows(ctx, args.(*model.AutoBuildRequest))
		},
	})
}
