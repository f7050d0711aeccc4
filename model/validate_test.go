package model

import (
	"encoding/json"
	"testing"

	"github.com/magoc/flowgen/docs"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return doc
}

func TestValidateDocument(t *testing.T) {
	cases := []struct {
		name    string
		schema  string
		body    string
		wantErr bool
	}{
		{
			name:   "generate valid",
			schema: docs.GenerateWorkflowSchema,
			body:   `{"description": "sync", "endpoints": [{"id": "a", "method": "GET", "path": "/a"}], "specId": "s"}`,
		},
		{
			name:    "generate missing description",
			schema:  docs.GenerateWorkflowSchema,
			body:    `{"endpoints": [], "specId": "s"}`,
			wantErr: true,
		},
		{
			name:    "generate empty description",
			schema:  docs.GenerateWorkflowSchema,
			body:    `{"description": "", "endpoints": [], "specId": "s"}`,
			wantErr: true,
		},
		{
			name:    "generate endpoint without id",
			schema:  docs.GenerateWorkflowSchema,
			body:    `{"description": "d", "endpoints": [{"method": "GET", "path": "/a"}], "specId": "s"}`,
			wantErr: true,
		},
		{
			name:   "suggest valid with empty endpoint list",
			schema: docs.SuggestFlowsSchema,
			body:   `{"endpoints": [], "specId": "s"}`,
		},
		{
			name:    "suggest missing specId",
			schema:  docs.SuggestFlowsSchema,
			body:    `{"endpoints": []}`,
			wantErr: true,
		},
		{
			name:   "learn valid",
			schema: docs.LearnPatternSchema,
			body:   `{"referenceWorkflow": {"name": "w"}, "referenceEndpoints": []}`,
		},
		{
			name:    "learn missing workflow",
			schema:  docs.LearnPatternSchema,
			body:    `{"referenceEndpoints": []}`,
			wantErr: true,
		},
		{
			name:   "build valid",
			schema: docs.AutoBuildSchema,
			body:   `{"suggestedFlows": [], "learnedPatterns": {}, "endpoints": [], "specId": "s"}`,
		},
		{
			name:    "build patterns must be an object",
			schema:  docs.AutoBuildSchema,
			body:    `{"suggestedFlows": [], "learnedPatterns": [], "endpoints": [], "specId": "s"}`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDocument(tc.name, tc.schema, decode(t, tc.body))
			if tc.wantErr && err == nil {
				t.Errorf("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
