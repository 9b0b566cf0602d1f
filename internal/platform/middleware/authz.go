// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/ignite/internal/platform/apperr"
	"github.com/taibuivan/ignite/internal/platform/constants"
	"github.com/taibuivan/ignite/internal/platform/ctxutil"
	"github.com/taibuivan/ignite/internal/platform/respond"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// # Authentication & Authorization

// TokenVerifier abstracts JWT verification for the authentication middleware.
// Only access tokens pass: a refresh token fails this check by construction.
type TokenVerifier interface {
	VerifyAccess(tokenString string) (*sec.TokenClaims, error)
}

// Authenticate parses the Authorization header and, when a valid access
// token is present, attaches the principal claims to the request context.
//
// It never rejects on its own: unauthenticated requests pass through with
// an empty principal so that public routes keep working. Pair it with
// [RequireAuth] on protected subtrees.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Extract the bearer token from the Authorization header
			header := request.Header.Get(constants.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, constants.AuthSchemeBearer) {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString := strings.TrimPrefix(header, constants.AuthSchemeBearer)

			// 2. Verify signature, expiry, and the access usage class
			claims, err := verifier.VerifyAccess(tokenString)
			if err != nil {
				// A malformed or expired token on an optional-auth route is
				// treated as anonymous; protected routes reject downstream.
				next.ServeHTTP(writer, request)
				return
			}

			// 3. Inject the principal into the request context
			ctx := ctxutil.WithPrincipal(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			if ctxutil.GetPrincipal(request.Context()) == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireAdmin rejects requests whose principal is not an admin.
//
// The check branches on the kind claim, never on which natural-key field
// happens to be populated.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			claims := ctxutil.GetPrincipal(request.Context())
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			if claims.Kind != "admin" {
				respond.Error(writer, request, apperr.Forbidden("Admin privileges required"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
