package telemetry

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/magoc/flowgen/config"
)

func TestInit(t *testing.T) {
	configs := []*config.Config{
		{},
		{Tracing: &config.TracingConfig{ServiceName: "test-stdout", Exporter: "stdout"}},
		{Tracing: &config.TracingConfig{ServiceName: "test-otlp", Exporter: "otlp", Endpoint: "http://localhost:4318"}},
		{Tracing: &config.TracingConfig{ServiceName: "test-unknown", Exporter: "unknown"}},
	}
	for _, cfg := range configs {
		Init(cfg) // must not panic for any config shape
	}
}

func TestWrapHandlerPassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("created"))
	})
	wrapped := WrapHandler("wrap-test", inner)

	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/things", nil))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if rec.Body.String() != "created" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestMetricsHandlerReportsRequestCounts(t *testing.T) {
	wrapped := WrapHandler("metrics-test", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anything", nil))

	metricsRec := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if metricsRec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", metricsRec.Code)
	}
	body := metricsRec.Body.String()
	for _, want := range []string{
		"flowgen_http_requests_total",
		"flowgen_http_request_duration_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}
