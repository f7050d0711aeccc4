// Package http hosts the JSON-over-HTTP surface: operation handlers generated
// from the registry, system endpoints, and request-scoped middleware.
package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/magoc/flowgen/api"
	"github.com/magoc/flowgen/completion"
	"github.com/magoc/flowgen/config"
	"github.com/magoc/flowgen/constants"
	"github.com/magoc/flowgen/telemetry"
	"github.com/magoc/flowgen/utils"
)

// StartServer wires the operation handlers onto a mux and serves until the
// listener fails. The completion client is built lazily from the environment
// on the first request that needs it, so the server starts fine without a
// credential and reports the problem per-request instead.
func StartServer(addr string, cfg *config.Config) error {
	svc := api.NewWorkflowServiceWithSource(completion.Lazy(completionOptions(cfg)))

	mux := http.NewServeMux()
	api.AttachHTTPHandlers(svc, mux)
	mux.Handle(constants.PathMetrics, telemetry.MetricsHandler())

	handler := telemetry.WrapHandler(constants.ServiceName, withRequestID(mux))
	utils.Info("listening on %s", addr)
	return http.ListenAndServe(addr, handler)
}

// completionOptions maps config overrides onto the completion client options.
func completionOptions(cfg *config.Config) completion.Options {
	opts := completion.Options{}
	if cfg == nil {
		return opts
	}
	opts.Model = cfg.Completion.Model
	opts.Temperature = cfg.Completion.Temperature
	opts.MaxTokens = cfg.Completion.MaxTokens
	opts.BaseURL = cfg.Completion.BaseURL
	return opts
}

// withRequestID mints a request ID per request, exposes it in the response
// headers, and threads it through the context for log correlation.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get(constants.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(constants.HeaderRequestID, reqID)
		ctx := utils.WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
