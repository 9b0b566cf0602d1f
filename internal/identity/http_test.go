// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/identity"
	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// recordingMetrics captures login outcome classes for assertions.
type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) CountLogin(outcome, kind string) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) CountStoreFailure(database string) {}

// loginHarness bundles the wired handler with its fakes for endpoint tests.
type loginHarness struct {
	handler    *identity.Handler
	service    *sec.TokenService
	adminStore *fakeAdminStore
	userStore  *fakeUserStore
	metrics    *recordingMetrics
}

func newLoginHarness(t *testing.T) *loginHarness {
	t.Helper()

	adminStore, userStore := fixtures(t)
	service := newTestTokenService(t)
	metrics := &recordingMetrics{}
	authenticator := identity.NewAuthenticator(adminStore, userStore, metrics, nil)
	issuer := identity.NewTokenIssuer(service)

	return &loginHarness{
		handler:    identity.NewHandler(authenticator, issuer, service),
		service:    service,
		adminStore: adminStore,
		userStore:  userStore,
		metrics:    metrics,
	}
}

// postJSON performs a POST against the handler's public routes.
func (h *loginHarness) postJSON(t *testing.T, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	h.handler.Routes().ServeHTTP(recorder, request)
	return recorder
}

/*
TestLogin_AdminSuccess verifies a valid admin login returns 200 with a
usable access token carrying the "code" claim, a confirmation message, and
the full normalized principal summary.
*/
func TestLogin_AdminSuccess(t *testing.T) {
	harness := newLoginHarness(t)

	recorder := harness.postJSON(t, "/login", map[string]string{
		"identifier": "LC2101-CDOE",
		"secret":     "admin123",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
			TokenType    string `json:"token_type"`
			Message      string `json:"message"`
			Principal    struct {
				Kind       string `json:"kind"`
				NaturalKey string `json:"natural_key"`
				Active     bool   `json:"active"`
				Privileged bool   `json:"privileged"`
			} `json:"principal"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "Bearer", envelope.Data.TokenType)
	assert.Equal(t, "Login successful", envelope.Data.Message)
	assert.Equal(t, "admin", envelope.Data.Principal.Kind)
	assert.Equal(t, "LC2101-CDOE", envelope.Data.Principal.NaturalKey)
	assert.True(t, envelope.Data.Principal.Active)
	assert.True(t, envelope.Data.Principal.Privileged)

	claims, err := harness.service.VerifyAccess(envelope.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "LC2101-CDOE", claims.Code)
	assert.Equal(t, "admin", claims.Kind)
}

/*
TestLogin_UserSuccess verifies a valid user login returns 200 with a token
carrying the "number" claim.
*/
func TestLogin_UserSuccess(t *testing.T) {
	harness := newLoginHarness(t)

	recorder := harness.postJSON(t, "/login", map[string]string{
		"identifier": "LC3001",
		"secret":     "user123",
	})

	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

	claims, err := harness.service.VerifyAccess(envelope.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "LC3001", claims.Number)
	assert.Empty(t, claims.Code)
	assert.Equal(t, "user", claims.Kind)
}

/*
TestLogin_CredentialFailuresAreUniform verifies that unknown identifier,
wrong password, and inactive account all produce byte-identical 401 bodies.
*/
func TestLogin_CredentialFailuresAreUniform(t *testing.T) {
	harness := newLoginHarness(t)
	harness.adminStore.accounts["LC2102-INAC"] = &identity.AdminAccount{
		Code:         "LC2102-INAC",
		PasswordHash: mustHash(t, "admin123"),
		IsActive:     false,
	}

	attempts := []map[string]string{
		{"identifier": "LC9999", "secret": "whatever"},      // unknown
		{"identifier": "LC2101-CDOE", "secret": "wrong"},    // wrong secret
		{"identifier": "LC2102-INAC", "secret": "admin123"}, // inactive
	}

	var bodies []string
	for _, attempt := range attempts {
		recorder := harness.postJSON(t, "/login", attempt)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		bodies = append(bodies, recorder.Body.String())
	}

	// All three rejection bodies must be identical
	assert.Equal(t, bodies[0], bodies[1])
	assert.Equal(t, bodies[1], bodies[2])
	assert.Contains(t, bodies[0], "UNAUTHORIZED")
}

/*
TestLogin_StoreOutageIs503 verifies a store outage returns 503 with the
UNAVAILABLE code, never a 401.
*/
func TestLogin_StoreOutageIs503(t *testing.T) {
	harness := newLoginHarness(t)
	harness.adminStore.failWith = apperr.Unavailable("Admin store unreachable", nil)

	recorder := harness.postJSON(t, "/login", map[string]string{
		"identifier": "LC2101-CDOE",
		"secret":     "admin123",
	})

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "UNAVAILABLE")
}

/*
TestLogin_MalformedRequests verifies structurally invalid payloads are 400,
reached before any store is consulted, and are counted under the malformed
outcome class.
*/
func TestLogin_MalformedRequests(t *testing.T) {
	harness := newLoginHarness(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid_json", "{not json"},
		{"missing_secret", `{"identifier":"LC3001"}`},
		{"missing_identifier", `{"secret":"user123"}`},
		{"empty_object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body))
			recorder := httptest.NewRecorder()
			harness.handler.Routes().ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Empty(t, harness.userStore.lookups, "no store lookup for malformed input")
		})
	}

	// Every boundary rejection above landed in the malformed outcome class.
	require.Len(t, harness.metrics.outcomes, len(tests))
	for _, outcome := range harness.metrics.outcomes {
		assert.Equal(t, "malformed", outcome)
	}
}

/*
TestRefresh_RoundTrip verifies the refresh flow mints a fresh usable pair
and rejects deactivated principals.
*/
func TestRefresh_RoundTrip(t *testing.T) {
	harness := newLoginHarness(t)

	// 1. Login to obtain a refresh token
	login := harness.postJSON(t, "/login", map[string]string{
		"identifier": "LC3001",
		"secret":     "user123",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var loginEnvelope struct {
		Data struct {
			RefreshToken string `json:"refresh_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &loginEnvelope))

	// 2. Exchange it
	refresh := harness.postJSON(t, "/refresh", map[string]string{
		"refresh_token": loginEnvelope.Data.RefreshToken,
	})
	require.Equal(t, http.StatusOK, refresh.Code)

	var refreshEnvelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(refresh.Body.Bytes(), &refreshEnvelope))

	claims, err := harness.service.VerifyAccess(refreshEnvelope.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "LC3001", claims.NaturalKey())

	// 3. Deactivated accounts cannot refresh
	harness.userStore.accounts["LC3001"].IsActive = false
	rejected := harness.postJSON(t, "/refresh", map[string]string{
		"refresh_token": loginEnvelope.Data.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rejected.Code)
}

/*
TestRefresh_RejectsAccessToken verifies an access token cannot be replayed
through the refresh endpoint.
*/
func TestRefresh_RejectsAccessToken(t *testing.T) {
	harness := newLoginHarness(t)

	login := harness.postJSON(t, "/login", map[string]string{
		"identifier": "LC3001",
		"secret":     "user123",
	})
	require.Equal(t, http.StatusOK, login.Code)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &envelope))

	recorder := harness.postJSON(t, "/refresh", map[string]string{
		"refresh_token": envelope.Data.AccessToken,
	})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestLogout_Idempotent verifies logout always succeeds with 204.
*/
func TestLogout_Idempotent(t *testing.T) {
	harness := newLoginHarness(t)

	for range 2 {
		recorder := harness.postJSON(t, "/logout", map[string]string{})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	}
}
