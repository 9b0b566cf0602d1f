// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics exposes Prometheus instrumentation for the API.

It tracks the two signals operators actually page on: HTTP latency per
route, and the outcome distribution of login attempts. Login outcomes are
labelled by result class only (success, invalid_credentials, unavailable,
malformed), never by identifier, so the metrics endpoint leaks nothing
about accounts.
*/
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// # Login Outcome Classes

const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid_credentials"
	OutcomeUnavailable = "unavailable"
	OutcomeMalformed   = "malformed"
)

// Registry holds all Prometheus collectors for the application.
type Registry struct {
	registry *prometheus.Registry

	httpDuration  *prometheus.HistogramVec
	loginAttempts *prometheus.CounterVec
	storeFailures *prometheus.CounterVec
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Registry{
		registry: registry,

		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ignite",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method, path pattern, and status.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "path", "status"}),

		loginAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ignite",
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Login attempts by outcome and principal kind.",
		}, []string{"outcome", "kind"}),

		storeFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ignite",
			Subsystem: "store",
			Name:      "failures_total",
			Help:      "Principal store query failures by database.",
		}, []string{"database"}),
	}
}

// ObserveRequest records one finished HTTP request.
func (r *Registry) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	r.httpDuration.WithLabelValues(method, path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// CountLogin records one login attempt outcome.
//
// The kind label is the principal kind on success and "unknown" otherwise:
// a failed attempt must not reveal which store the identifier belongs to.
func (r *Registry) CountLogin(outcome, kind string) {
	if kind == "" {
		kind = "unknown"
	}
	r.loginAttempts.WithLabelValues(outcome, kind).Inc()
}

// CountStoreFailure records one infrastructure failure against a database.
func (r *Registry) CountStoreFailure(database string) {
	r.storeFailures.WithLabelValues(database).Inc()
}

// Handler returns the HTTP handler serving the /metrics scrape endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// # HTTP Instrumentation

type instrumentedWriter struct {
	http.ResponseWriter
	status int
}

func (writer *instrumentedWriter) WriteHeader(code int) {
	writer.status = code
	writer.ResponseWriter.WriteHeader(code)
}

// Instrument wraps a handler chain with request-duration observation.
//
// The path label uses the chi route pattern resolved during routing
// ("/api/v1/students/{id}", not the raw URL), so parameterized routes
// collapse to one label value and cardinality stays bounded by the route
// surface. The pattern is only available after ServeHTTP returns, which
// is why the label is read last. Unrouted requests (404s outside any
// pattern) fall back to the raw path.
func (r *Registry) Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		startTime := time.Now()
		wrapped := &instrumentedWriter{ResponseWriter: writer, status: http.StatusOK}

		next.ServeHTTP(wrapped, request)

		path := request.URL.Path
		if routeContext := chi.RouteContext(request.Context()); routeContext != nil {
			if pattern := routeContext.RoutePattern(); pattern != "" {
				path = pattern
			}
		}

		r.ObserveRequest(request.Method, path, wrapped.status, time.Since(startTime))
	})
}
