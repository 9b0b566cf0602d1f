// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/platform/metrics"
)

// scrape renders the registry's /metrics output as text.
func scrape(t *testing.T, registry *metrics.Registry) string {
	t.Helper()

	recorder := httptest.NewRecorder()
	registry.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.Body.String()
}

/*
TestInstrument_LabelsWithRoutePattern verifies that requests to a
parameterized route share one path label (the route pattern), so the
histogram's cardinality does not grow with the number of entities.
*/
func TestInstrument_LabelsWithRoutePattern(t *testing.T) {
	registry := metrics.NewRegistry()

	router := chi.NewRouter()
	router.Use(registry.Instrument)
	router.Get("/students/{id}", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})

	// 1. Hit the same route with two different path parameters
	for _, target := range []string{"/students/0192d7a0-aaaa", "/students/0192d7a0-bbbb"} {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, recorder.Code)
	}

	// 2. Both observations collapsed into the pattern label
	body := scrape(t, registry)
	assert.Contains(t, body, `path="/students/{id}"`)
	assert.Contains(t, body, `ignite_http_request_duration_seconds_count{method="GET",path="/students/{id}",status="200"} 2`)

	// 3. The raw paths never became label values
	assert.NotContains(t, body, `path="/students/0192d7a0-aaaa"`)
	assert.NotContains(t, body, `path="/students/0192d7a0-bbbb"`)
}

/*
TestInstrument_RecordsStatus verifies the status label reflects the
handler's response code, not the wrapped default.
*/
func TestInstrument_RecordsStatus(t *testing.T) {
	registry := metrics.NewRegistry()

	router := chi.NewRouter()
	router.Use(registry.Instrument)
	router.Get("/teapot", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	require.Equal(t, http.StatusTeapot, recorder.Code)

	assert.Contains(t, scrape(t, registry), `status="418"`)
}
