package constants

// Configuration Files
const (
	ConfigFileName = "flowgen.config.json"
)

// Environment Variables
const (
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
	EnvDebug        = "FLOWGEN_DEBUG"
)

// Completion Defaults
const (
	DefaultCompletionModel       = "gpt-4o"
	DefaultCompletionTemperature = 0.7
	DefaultCompletionMaxTokens   = 4096
	DefaultCompletionBaseURL     = "https://api.openai.com/v1"
)

// Operation IDs
const (
	OpGenerateWorkflow = "generateWorkflow"
	OpSuggestFlows     = "suggestFlows"
	OpLearnPattern     = "learnPattern"
	OpAutoBuildFlows   = "autoBuildFlows"
)

// Response Defaults
const (
	DefaultAPISummary   = "API analysis complete"
	DefaultConfidence   = 0.8
	PlaceholderNone     = "None"
	PlaceholderNA       = "N/A"
	StepIDPrefix        = "step-"
	DependsOnPrefix     = "depends on "
	EndpointSeparator   = "\n\n---\n\n"
	SuggestionSeparator = "\n\n"
)

// Service Identity
const (
	ServiceName    = "flowgen"
	ServiceTitle   = "FlowGen Workflow Extensions"
	ServiceVersion = "1.0.0"
)
