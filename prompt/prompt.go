// Package prompt renders operation inputs into the deterministic text blocks
// sent to the completion service. Rendering is pure and total: identical input
// yields byte-identical output, and empty lists render as a placeholder
// instead of failing.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/model"
)

// GenerateWorkflowData renders the user turn for the endpoint-selection operation.
func GenerateWorkflowData(description string, endpoints []model.Endpoint) string {
	var b strings.Builder
	b.WriteString("User's desired flow/outcome:\n")
	fmt.Fprintf(&b, "\"%s\"\n\n", description)
	b.WriteString("Available API endpoints:\n")
	b.WriteString(FormatEndpoints(endpoints))
	b.WriteString("\n\nAnalyze this and create an optimal workflow.")
	return b.String()
}

// SuggestFlowsData renders the user turn for the suggestion operation.
func SuggestFlowsData(endpoints []model.Endpoint) string {
	var b strings.Builder
	b.WriteString("Available API endpoints:\n")
	b.WriteString(FormatEndpointsBrief(endpoints))
	b.WriteString("\n\nAnalyze this API and suggest practical workflows.")
	return b.String()
}

// LearnPatternData renders the user turn for the pattern-extraction operation.
func LearnPatternData(workflow model.Workflow, endpoints []model.Endpoint) string {
	var b strings.Builder
	b.WriteString("Reference workflow to analyze:\n\n")
	b.WriteString(FormatWorkflow(workflow, endpoints))
	b.WriteString("\n\nExtract reusable patterns from this workflow.")
	return b.String()
}

// AutoBuildData renders the user turn for the composition operation.
func AutoBuildData(flows []model.SuggestedFlow, patterns json.RawMessage, endpoints []model.Endpoint) string {
	var b strings.Builder
	b.WriteString("Suggested Workflows:\n")
	b.WriteString(FormatSuggestions(flows))
	b.WriteString("\n\nLearned Patterns:\n")
	b.WriteString(FormatPatterns(patterns))
	b.WriteString("\n\nAvailable API Endpoints:\n")
	b.WriteString(FormatEndpoints(endpoints))
	b.WriteString("\n\nBuild complete workflows by applying the learned patterns to the suggestions.")
	return b.String()
}

// FormatEndpoints renders endpoint descriptors, one block per endpoint with a
// parameter line, joined by a fixed separator.
func FormatEndpoints(endpoints []model.Endpoint) string {
	if len(endpoints) == 0 {
		return constants.PlaceholderNone
	}
	blocks := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		var b strings.Builder
		writeEndpointHeader(&b, ep)
		fmt.Fprintf(&b, "\nParameters: %s", FormatParameters(ep.Parameters))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, constants.EndpointSeparator)
}

// FormatEndpointsBrief renders endpoint descriptors without parameter lines.
func FormatEndpointsBrief(endpoints []model.Endpoint) string {
	if len(endpoints) == 0 {
		return constants.PlaceholderNone
	}
	blocks := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		var b strings.Builder
		writeEndpointHeader(&b, ep)
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, constants.EndpointSeparator)
}

func writeEndpointHeader(b *strings.Builder, ep model.Endpoint) {
	fmt.Fprintf(b, "ID: %s\n", ep.ID)
	fmt.Fprintf(b, "Method: %s\n", ep.Method)
	fmt.Fprintf(b, "Path: %s\n", ep.Path)
	fmt.Fprintf(b, "Summary: %s\n", orNA(ep.Summary))
	fmt.Fprintf(b, "Description: %s", orNA(ep.Description))
}

// FormatParameters renders a parameter list as a single comma-joined line.
// An empty list renders the literal placeholder, never an empty string.
func FormatParameters(params []model.Parameter) string {
	if len(params) == 0 {
		return constants.PlaceholderNone
	}
	parts := make([]string, 0, len(params))
	for _, p := range params {
		in := p.In
		if in == "" {
			in = "query"
		}
		req := "optional"
		if p.Required {
			req = "required"
		}
		parts = append(parts, fmt.Sprintf("%s (%s, %s)", p.Name, in, req))
	}
	return strings.Join(parts, ", ")
}

// FormatWorkflow renders a reference workflow with its steps resolved against
// the supplied endpoint list. Steps referencing unknown endpoints are skipped.
func FormatWorkflow(workflow model.Workflow, endpoints []model.Endpoint) string {
	index := make(map[string]model.Endpoint, len(endpoints))
	for _, ep := range endpoints {
		index[ep.ID] = ep
	}

	var steps []string
	for _, step := range workflow.Steps {
		ep, ok := index[step.EndpointID]
		if !ok {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Step %d: %s\n", step.Order, orNA(step.ID))
		fmt.Fprintf(&b, "  Endpoint: %s %s\n", ep.Method, ep.Path)
		fmt.Fprintf(&b, "  Reasoning: %s\n", orNA(step.Reasoning))
		fmt.Fprintf(&b, "  Parameters: %s", indentJSON(step.Parameters, "    "))
		if step.ConditionalLogic != nil {
			cond, _ := json.Marshal(step.ConditionalLogic)
			fmt.Fprintf(&b, "\n  Conditional: %s", cond)
		}
		steps = append(steps, b.String())
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Workflow Name: %s\n", orNA(workflow.Name))
	fmt.Fprintf(&b, "Description: %s\n\n", orNA(workflow.Description))
	b.WriteString("Steps:\n")
	b.WriteString(strings.Join(steps, "\n"))
	b.WriteString("\n\nAvailable Endpoints:\n")
	b.WriteString(FormatEndpointIndex(endpoints))
	return b.String()
}

// FormatEndpointIndex renders a compact one-line-per-endpoint listing.
func FormatEndpointIndex(endpoints []model.Endpoint) string {
	if len(endpoints) == 0 {
		return constants.PlaceholderNone
	}
	lines := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		lines = append(lines, fmt.Sprintf("- %s: %s %s", ep.ID, ep.Method, ep.Path))
	}
	return strings.Join(lines, "\n")
}

// FormatSuggestions renders suggested flows as blank-line separated blocks.
func FormatSuggestions(flows []model.SuggestedFlow) string {
	if len(flows) == 0 {
		return constants.PlaceholderNone
	}
	blocks := make([]string, 0, len(flows))
	for _, flow := range flows {
		var b strings.Builder
		fmt.Fprintf(&b, "ID: %s\n", flow.ID)
		fmt.Fprintf(&b, "Name: %s\n", flow.Name)
		fmt.Fprintf(&b, "Description: %s\n", flow.Description)
		fmt.Fprintf(&b, "Use Case: %s\n", orNA(flow.UseCase))
		fmt.Fprintf(&b, "Category: %s\n", orNA(flow.Category))
		fmt.Fprintf(&b, "Complexity: %s\n", orNA(flow.Complexity))
		fmt.Fprintf(&b, "Suggested Endpoints: %s", strings.Join(flow.Endpoints, ", "))
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, constants.SuggestionSeparator)
}

// FormatPatterns renders the opaque learned-pattern block as indented JSON.
func FormatPatterns(patterns json.RawMessage) string {
	if len(patterns) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, patterns, "", "  "); err != nil {
		return string(patterns)
	}
	return buf.String()
}

func indentJSON(params map[string]string, indent string) string {
	if len(params) == 0 {
		return "{}"
	}
	out, err := json.MarshalIndent(params, "", indent)
	if err != nil {
		return "{}"
	}
	return string(out)
}

func orNA(s string) string {
	if s == "" {
		return constants.PlaceholderNA
	}
	return s
}
