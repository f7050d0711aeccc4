// Package docs holds embedded documents: the JSON Schemas the HTTP boundary
// validates request bodies against.
package docs

import _ "embed"

//go:embed generate_workflow.schema.json
var GenerateWorkflowSchema string

//go:embed suggest_flows.schema.json
var SuggestFlowsSchema string

//go:embed learn_pattern.schema.json
var LearnPatternSchema string

//go:embed auto_build.schema.json
var AutoBuildSchema string
