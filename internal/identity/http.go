// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ignite/internal/platform/apperr"
	requestutil "github.com/taibuivan/ignite/internal/platform/request"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/internal/platform/sec"
	"github.com/taibuivan/ignite/internal/platform/validate"
)

// RefreshVerifier defines the contract for validating refresh tokens.
type RefreshVerifier interface {
	VerifyRefresh(tokenString string) (*sec.TokenClaims, error)
}

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// This handler manages the identity lifecycle entry points (login, token
// refresh, logout, password change). It contains NO business logic: the
// trial order and rejection semantics live in [Authenticator].
type Handler struct {
	authenticator *Authenticator
	issuer        *TokenIssuer
	verifier      RefreshVerifier
}

// NewHandler constructs a new [Handler] with its service dependencies.
func NewHandler(authenticator *Authenticator, issuer *TokenIssuer, verifier RefreshVerifier) *Handler {
	return &Handler{
		authenticator: authenticator,
		issuer:        issuer,
		verifier:      verifier,
	}
}

// Routes returns a [chi.Router] configured with the public auth routes.
//
// # Endpoints
//   - POST /login   : Authenticates an identifier/secret pair.
//   - POST /refresh : Exchanges a refresh token for a new pair.
//   - POST /logout  : Acknowledges client-side token disposal.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/refresh", handler.refresh)
	router.Post("/logout", handler.logout)

	return router
}

// loginRequest represents the JSON payload for an authentication attempt.
//
// The identifier field is deliberately kind-agnostic: callers submit one
// string and the trial order decides which population it belongs to.
type loginRequest struct {
	Identifier string `json:"identifier"`
	Secret     string `json:"secret"`
}

// login handles POST /api/v1/auth/login requests.
//
// # Returns
//   - Writes HTTP 200 OK with the token pair and normalized principal.
//   - Writes HTTP 400 Bad Request for a structurally invalid payload.
//   - Writes HTTP 401 Unauthorized for any credential failure, without
//     revealing which of the three causes applied.
//   - Writes HTTP 503 Service Unavailable when a principal store is down.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	// ── 1. Payload Extraction ─────────────────────────────────────────────

	var input loginRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		handler.authenticator.NoteMalformedAttempt()
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// ── 2. Boundary Validation ────────────────────────────────────────────

	// A missing field is a malformed request (400), not a failed credential
	// check (401). Trial order never runs for structurally invalid input.
	if input.Identifier == "" || input.Secret == "" {
		handler.authenticator.NoteMalformedAttempt()
		respond.Error(writer, request, validate.RequiredError("identifier/secret", "are required"))
		return
	}

	// ── 3. Application Execution ──────────────────────────────────────────

	principal, err := handler.authenticator.Authenticate(request.Context(), input.Identifier, input.Secret)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tokens, err := handler.issuer.Issue(principal)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// ── 4. Presentation Output ────────────────────────────────────────────

	respond.OK(writer, map[string]any{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    tokens.TokenType,
		"expires_in":    tokens.ExpiresIn,
		"principal":     principal,
		"message":       "Login successful",
	})
}

// refreshRequest represents the JSON payload for a token refresh.
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// refresh handles POST /api/v1/auth/refresh requests.
//
// The principal is re-fetched from its home database before new tokens are
// minted, so deactivation takes effect within one access-token lifetime.
func (handler *Handler) refresh(writer http.ResponseWriter, request *http.Request) {
	var input refreshRequest
	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if input.RefreshToken == "" {
		respond.Error(writer, request, validate.RequiredError("refresh_token", "is required"))
		return
	}

	// Signature, expiry, and the refresh usage class are all checked here;
	// an access token presented as a refresh token fails this step.
	claims, err := handler.verifier.VerifyRefresh(input.RefreshToken)
	if err != nil {
		respond.Error(writer, request, apperr.Unauthorized("Invalid or expired refresh token"))
		return
	}

	principal, err := handler.authenticator.ResolvePrincipal(request.Context(), Kind(claims.Kind), claims.NaturalKey())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	tokens, err := handler.issuer.Issue(principal)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"token_type":    tokens.TokenType,
		"expires_in":    tokens.ExpiresIn,
	})
}

// logout handles POST /api/v1/auth/logout requests.
//
// Tokens are stateless, so there is nothing to revoke server-side: the
// endpoint exists so clients have a uniform place to end a session, and it
// is idempotent by construction.
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	respond.NoContent(writer)
}

// # Protected Routes

// ProtectedRoutes returns a [chi.Router] with routes that require an
// authenticated principal (mounted behind the auth middleware).
//
// # Endpoints
//   - GET  /me              : Returns the active principal's identity.
//   - POST /change-password : Rotates the principal's secret.
func (handler *Handler) ProtectedRoutes() chi.Router {
	router := chi.NewRouter()

	router.Get("/me", handler.me)
	router.Post("/change-password", handler.changePassword)

	return router
}

// me handles GET /api/v1/account/me requests.
//
// The response is reconstructed from token claims alone: no database is
// consulted, which is the entire point of carrying identity in the JWT.
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]any{
		"kind":        claims.Kind,
		"natural_key": claims.NaturalKey(),
		"lsc_name":    claims.DisplayName,
		"source_db":   claims.SourceDB,
	})
}

// changePasswordRequest represents the JSON payload for a secret rotation.
type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// changePassword handles POST /api/v1/account/change-password requests.
func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.
		Required("current_password", input.CurrentPassword).
		Password("new_password", input.NewPassword).
		Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authenticator.ChangePassword(
		request.Context(),
		Kind(claims.Kind),
		claims.NaturalKey(),
		input.CurrentPassword,
		input.NewPassword,
	); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
