package httptransport

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcelsort/internal/classifier"
	classifierhandler "parcelsort/internal/classifier/handler"
	classifiermetrics "parcelsort/internal/classifier/metrics"
	"parcelsort/internal/platform/metrics"
	"parcelsort/internal/platform/middleware"
	"parcelsort/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	logger := slog.New(slog.DiscardHandler)
	svc := classifier.NewService(logger, classifiermetrics.NewWithRegisterer(reg))
	return NewRouter(RouterDeps{
		Logger:   logger,
		Metrics:  metrics.NewWithRegistry(reg, reg),
		Info:     Info{Name: "Package Classification API", Version: "1.0.0"},
		Handlers: []Registrar{classifierhandler.New(svc, logger)},
	})
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	for _, path := range []string{"/health", "/api/v1/packages/health"} {
		t.Run(path, func(t *testing.T) {
			rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, path))
			testutil.AssertStatusOK(t, rr)
			resp := testutil.UnmarshalResponse[HealthResponse](t, rr)
			assert.Equal(t, "UP", resp.Status)
			assert.Equal(t, "Package Classification API", resp.Service)
			assert.NotZero(t, resp.Timestamp)
		})
	}
}

func TestInfo(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/packages/info"))
	testutil.AssertStatusOK(t, rr)

	resp := testutil.UnmarshalResponse[InfoResponse](t, rr)
	assert.Equal(t, "1.0.0", resp.Version)
	assert.Equal(t, "/api/v1/packages/classify?width=150&height=30&length=20&mass=25000", resp.Examples["rejected"])
	assert.Equal(t, "Any dimension >= 150cm OR volume >= 1000000 cm³", resp.Rules["bulky"])
}

func TestInfoExamplesClassifyAsNamed(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/packages/info"))
	info := testutil.UnmarshalResponse[InfoResponse](t, rr)

	want := map[string]string{
		"standard": "STANDARD",
		"bulky":    "SPECIAL",
		"heavy":    "SPECIAL",
		"rejected": "REJECTED",
	}
	for name, decision := range want {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, info.Examples[name]))
		testutil.AssertStatusOK(t, rr)
		testutil.AssertJSONContains(t, rr, "decision", decision)
	}
}

func TestQueryAndPathAgree(t *testing.T) {
	router := newTestRouter(t)
	decode := func(path string) map[string]any {
		rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, path))
		testutil.AssertStatusOK(t, rr)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		delete(body, "timestamp")
		return body
	}

	assert.Equal(t,
		decode("/api/v1/packages/classify?width=100&height=100&length=100&mass=5000"),
		decode("/api/v1/packages/classify/100/100/100/5000"),
	)
}

func TestClassifyValidationErrors(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/packages/classify/10/10/10/0"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_mass")

	rr = testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/packages/classify/10/-1/10/5"))
	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "invalid_dimension")
}

func TestClassifyBody(t *testing.T) {
	router := newTestRouter(t)
	req := testutil.NewJSONRequest(t, http.MethodPost, "/api/v1/packages/classify", map[string]any{
		"width": 50, "height": 30, "length": 20, "mass": 25000,
	})
	rr := testutil.DoRequest(router, req)
	testutil.AssertStatusOK(t, rr)
	testutil.AssertJSONContains(t, rr, "decision", "SPECIAL")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/api/v1/packages/classify/50/30/20/5000"))

	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatusOK(t, rr)
	body := rr.Body.String()
	assert.Contains(t, body, `parcelsort_decisions_total{decision="STANDARD"} 1`)
	assert.Contains(t, body, "parcelsort_http_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/health"))
	assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/nope"))
	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestMetricsDisabled(t *testing.T) {
	router := NewRouter(RouterDeps{Logger: slog.New(slog.DiscardHandler)})
	rr := testutil.DoRequest(router, testutil.NewRequest(t, http.MethodGet, "/metrics"))
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}
