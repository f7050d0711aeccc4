package prompt

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/magoc/flowgen/model"
)

var sampleEndpoints = []model.Endpoint{
	{
		ID:      "listUsers",
		Method:  "GET",
		Path:    "/users",
		Summary: "List users",
		Parameters: []model.Parameter{
			{Name: "limit", In: "query"},
			{Name: "orgId", In: "path", Required: true},
		},
	},
	{
		ID:          "createUser",
		Method:      "POST",
		Path:        "/users",
		Description: "Creates a user",
	},
}

func TestFormatEndpoints(t *testing.T) {
	got := FormatEndpoints(sampleEndpoints)

	want := "ID: listUsers\n" +
		"Method: GET\n" +
		"Path: /users\n" +
		"Summary: List users\n" +
		"Description: N/A\n" +
		"Parameters: limit (query, optional), orgId (path, required)" +
		"\n\n---\n\n" +
		"ID: createUser\n" +
		"Method: POST\n" +
		"Path: /users\n" +
		"Summary: N/A\n" +
		"Description: Creates a user\n" +
		"Parameters: None"
	if got != want {
		t.Errorf("FormatEndpoints mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatEndpointsEmpty(t *testing.T) {
	if got := FormatEndpoints(nil); got != "None" {
		t.Errorf("expected None for empty list, got %q", got)
	}
	if got := FormatEndpointsBrief(nil); got != "None" {
		t.Errorf("expected None for empty brief list, got %q", got)
	}
}

func TestFormatEndpointsBriefOmitsParameters(t *testing.T) {
	got := FormatEndpointsBrief(sampleEndpoints)
	if strings.Contains(got, "Parameters:") {
		t.Errorf("brief format should not carry a Parameters line:\n%s", got)
	}
	if !strings.Contains(got, "ID: listUsers") || !strings.Contains(got, "ID: createUser") {
		t.Errorf("brief format missing endpoint blocks:\n%s", got)
	}
}

func TestFormatParameters(t *testing.T) {
	if got := FormatParameters(nil); got != "None" {
		t.Errorf("empty parameter list must render None, got %q", got)
	}
	got := FormatParameters([]model.Parameter{
		{Name: "id", Required: true},
		{Name: "verbose", In: "header"},
	})
	want := "id (query, required), verbose (header, optional)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestGenerateWorkflowDataQuotesDescription(t *testing.T) {
	got := GenerateWorkflowData("sync users nightly", sampleEndpoints)
	if !strings.HasPrefix(got, "User's desired flow/outcome:\n\"sync users nightly\"\n\n") {
		t.Errorf("description not quoted as expected:\n%s", got)
	}
	if !strings.HasSuffix(got, "Analyze this and create an optimal workflow.") {
		t.Errorf("missing trailing instruction:\n%s", got)
	}
}

func TestDataBuildersAreDeterministic(t *testing.T) {
	wf := model.Workflow{
		Name: "Onboard",
		Steps: []model.WorkflowStep{
			{ID: "step-1", EndpointID: "listUsers", Order: 1, Reasoning: "start", Parameters: map[string]string{"limit": "10"}},
		},
	}
	flows := []model.SuggestedFlow{{ID: "f1", Name: "Sync", Description: "d", Endpoints: []string{"listUsers"}}}
	patterns := json.RawMessage(`{"naming":"kebab"}`)

	builders := map[string]func() string{
		"generate": func() string { return GenerateWorkflowData("desc", sampleEndpoints) },
		"suggest":  func() string { return SuggestFlowsData(sampleEndpoints) },
		"learn":    func() string { return LearnPatternData(wf, sampleEndpoints) },
		"build":    func() string { return AutoBuildData(flows, patterns, sampleEndpoints) },
	}
	for name, build := range builders {
		if build() != build() {
			t.Errorf("%s data builder is not deterministic", name)
		}
	}
}

func TestFormatWorkflowSkipsUnknownEndpoints(t *testing.T) {
	wf := model.Workflow{
		Name: "Mixed",
		Steps: []model.WorkflowStep{
			{ID: "step-1", EndpointID: "listUsers", Order: 1},
			{ID: "step-2", EndpointID: "ghost", Order: 2},
		},
	}
	got := FormatWorkflow(wf, sampleEndpoints)
	if !strings.Contains(got, "Step 1: step-1") {
		t.Errorf("known step missing:\n%s", got)
	}
	if strings.Contains(got, "step-2") {
		t.Errorf("step referencing unknown endpoint should be skipped:\n%s", got)
	}
	if !strings.Contains(got, "- listUsers: GET /users") {
		t.Errorf("endpoint index missing:\n%s", got)
	}
}

func TestFormatWorkflowConditional(t *testing.T) {
	wf := model.Workflow{
		Steps: []model.WorkflowStep{
			{
				ID:               "step-2",
				EndpointID:       "createUser",
				Order:            2,
				ConditionalLogic: &model.ConditionalLogic{Condition: "depends on step-1"},
			},
		},
	}
	got := FormatWorkflow(wf, sampleEndpoints)
	if !strings.Contains(got, `Conditional: {"condition":"depends on step-1"}`) {
		t.Errorf("conditional block missing:\n%s", got)
	}
}

func TestFormatSuggestions(t *testing.T) {
	if got := FormatSuggestions(nil); got != "None" {
		t.Errorf("empty suggestions must render None, got %q", got)
	}
	flows := []model.SuggestedFlow{
		{ID: "f1", Name: "Sync", Description: "d", UseCase: "ops", Category: "sync", Complexity: "simple", Endpoints: []string{"a", "b"}},
		{ID: "f2", Name: "Report", Description: "d2"},
	}
	got := FormatSuggestions(flows)
	if !strings.Contains(got, "Suggested Endpoints: a, b") {
		t.Errorf("endpoint list missing:\n%s", got)
	}
	if !strings.Contains(got, "Use Case: N/A") {
		t.Errorf("missing fields of second flow should render N/A:\n%s", got)
	}
	if len(strings.Split(got, "\n\n")) != 2 {
		t.Errorf("suggestion blocks should be blank-line separated:\n%s", got)
	}
}

func TestFormatPatterns(t *testing.T) {
	if got := FormatPatterns(nil); got != "{}" {
		t.Errorf("empty patterns must render {}, got %q", got)
	}
	got := FormatPatterns(json.RawMessage(`{"a":1}`))
	want := "{\n  \"a\": 1\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
