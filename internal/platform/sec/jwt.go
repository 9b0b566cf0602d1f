// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer behind small interfaces.
package sec

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/ignite/pkg/uuid"
)

// # Token Usage Classes

const (
	// TokenUseAccess marks a token that authorizes resource access.
	TokenUseAccess = "access"

	// TokenUseRefresh marks a token whose only power is minting a new
	// access token. It deliberately carries too few claims to pass a
	// resource-endpoint check.
	TokenUseRefresh = "refresh"
)

// TokenClaims represents the payload embedded inside an Ignite JWT.
//
// # Why custom claims?
//
// By embedding the natural key, display name, and principal kind directly
// inside the JWT, downstream handlers can reconstruct the active principal
// WITHOUT querying either principal database on every single API request.
//
// The natural key travels under a kind-dependent field: admins expose
// "code", users expose "number". Consumers must branch on the Kind claim,
// never on which field happens to be present.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Code is the admin natural key (lsc_code). Empty for user principals.
	Code string `json:"code,omitempty"`

	// Number is the user natural key (lsc_number). Empty for admin principals.
	Number string `json:"number,omitempty"`

	// DisplayName mirrors the lsc_name column of the source record.
	DisplayName string `json:"lsc_name,omitempty"`

	// Kind is "admin" or "user".
	Kind string `json:"kind"`

	// SourceDB identifies the physical database the principal came from.
	SourceDB string `json:"source_db,omitempty"`

	// TokenUse is one of [TokenUseAccess] or [TokenUseRefresh].
	TokenUse string `json:"token_use"`
}

// NaturalKey returns the claim value acting as the principal's natural key,
// resolved through the Kind claim.
func (c *TokenClaims) NaturalKey() string {
	if c.Kind == "admin" {
		return c.Code
	}
	return c.Number
}

// TokenService handles generation and verification of JWT tokens using RS256.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string

	// now is the clock used for iat/exp. Injectable so token construction
	// is reproducible in tests (only the jti nonce varies).
	now func() time.Time
}

// NewTokenService creates a new TokenService.
// It reads RSA keys from the provided filesystem paths.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string) (*TokenService, error) {
	privateKeyData, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
	}

	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
	}

	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return &TokenService{
		privateKey: privateKey,
		publicKey:  publicKey,
		issuer:     issuer,
		now:        time.Now,
	}, nil
}

// NewTokenServiceFromKey creates a TokenService from an in-memory RSA key.
// Used by tests and tooling that generate ephemeral keys.
func NewTokenServiceFromKey(privateKey *rsa.PrivateKey, issuer string, clock func() time.Time) *TokenService {
	if clock == nil {
		clock = time.Now
	}
	return &TokenService{
		privateKey: privateKey,
		publicKey:  &privateKey.PublicKey,
		issuer:     issuer,
		now:        clock,
	}
}

// Sign stamps the registered claims (iss, iat, exp, jti) onto the given
// payload and returns the signed compact JWT.
func (service *TokenService) Sign(claims TokenClaims, timeToLive time.Duration) (string, error) {
	currentTime := service.now()
	claims.Issuer = service.issuer
	claims.IssuedAt = jwt.NewNumericDate(currentTime)
	claims.ExpiresAt = jwt.NewNumericDate(currentTime.Add(timeToLive))
	claims.ID = uuid.New()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signedToken, err := token.SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyAccess checks signature and validity of a JWT string and requires
// the access token usage class.
//
// A refresh token presented here fails even though its signature is valid:
// it does not carry enough claims to authorize resource access.
func (service *TokenService) VerifyAccess(tokenString string) (*TokenClaims, error) {
	claims, err := service.verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != TokenUseAccess {
		return nil, fmt.Errorf("sec: token is not an access token")
	}
	return claims, nil
}

// VerifyRefresh checks signature and validity of a JWT string and requires
// the refresh token usage class.
func (service *TokenService) VerifyRefresh(tokenString string) (*TokenClaims, error) {
	claims, err := service.verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenUse != TokenUseRefresh {
		return nil, fmt.Errorf("sec: token is not a refresh token")
	}
	return claims, nil
}

// verify checks the signature and temporal validity of a JWT string.
func (service *TokenService) verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	}, jwt.WithTimeFunc(service.now))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
