// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity

import (
	"fmt"
	"time"

	"github.com/taibuivan/ignite/internal/platform/constants"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// TokenSigner defines the contract for stamping and signing claim payloads.
//
// The concrete implementation is [sec.TokenService]; the interface exists so
// issuance logic can be tested against a deterministic clock.
type TokenSigner interface {
	Sign(claims sec.TokenClaims, timeToLive time.Duration) (string, error)
}

// TokenPair is the credential bundle returned by a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"` // Access-token lifetime in seconds.
}

// TokenIssuer mints kind-dependent JWTs for authenticated principals.
//
// # Claim Shape
//
// The natural key travels under a kind-dependent field: "code" for admins,
// "number" for users. Both kinds carry "lsc_name", "kind", and "source_db".
// Consumers branch on "kind" to pick the field — never on field presence.
//
// Refresh tokens deliberately carry only the natural key and kind: too few
// claims to pass the access-token check at any resource endpoint.
type TokenIssuer struct {
	signer TokenSigner
}

// NewTokenIssuer constructs a [TokenIssuer].
func NewTokenIssuer(signer TokenSigner) *TokenIssuer {
	return &TokenIssuer{signer: signer}
}

// Issue mints an access/refresh token pair for the given principal.
func (issuer *TokenIssuer) Issue(principal *Principal) (*TokenPair, error) {
	accessToken, err := issuer.signer.Sign(accessClaims(principal), constants.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token_issuer_access_failed: %w", err)
	}

	refreshToken, err := issuer.signer.Sign(refreshClaims(principal), constants.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token_issuer_refresh_failed: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(constants.AccessTokenTTL.Seconds()),
	}, nil
}

// accessClaims builds the full claim set for resource access.
func accessClaims(principal *Principal) sec.TokenClaims {
	claims := sec.TokenClaims{
		Kind:        string(principal.Kind),
		DisplayName: principal.DisplayName,
		SourceDB:    string(principal.SourceDB),
		TokenUse:    sec.TokenUseAccess,
	}
	claims.Subject = principal.NaturalKey
	setNaturalKey(&claims, principal)
	return claims
}

// refreshClaims builds the minimal claim set for minting new access tokens.
func refreshClaims(principal *Principal) sec.TokenClaims {
	claims := sec.TokenClaims{
		Kind:     string(principal.Kind),
		TokenUse: sec.TokenUseRefresh,
	}
	claims.Subject = principal.NaturalKey
	setNaturalKey(&claims, principal)
	return claims
}

// setNaturalKey places the natural key under the kind-dependent field.
func setNaturalKey(claims *sec.TokenClaims, principal *Principal) {
	if principal.Kind == KindAdmin {
		claims.Code = principal.NaturalKey
		return
	}
	claims.Number = principal.NaturalKey
}
