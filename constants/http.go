package constants

// HTTP Paths
const (
	PathGenerateWorkflow = "/api/workflows/generate-from-nl"
	PathSuggestFlows     = "/api/workflows/suggest-flows"
	PathLearnPattern     = "/api/workflows/learn-pattern"
	PathAutoBuildFlows   = "/api/workflows/auto-build-flows"
	PathHealth           = "/healthz"
	PathMetrics          = "/metrics"
	PathRoot             = "/"
)

// Content Types
const (
	ContentTypeJSON = "application/json"
)

// HTTP Headers
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
)

// Response Messages
const (
	ResponseInvalidRequestBody = "invalid request body"
	HealthCheckResponse        = `{"status":"healthy","service":"flowgen"}`
)
