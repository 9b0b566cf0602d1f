// Copyright (c) 2026 Ignite. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package identity_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ignite/internal/identity"
	"github.com/taibuivan/ignite/internal/platform/constants"
	"github.com/taibuivan/ignite/internal/platform/dbrouter"
	"github.com/taibuivan/ignite/internal/platform/sec"
)

// newTestTokenService builds a TokenService with an ephemeral RSA key and a
// frozen clock so issued claims are reproducible.
func newTestTokenService(t *testing.T) *sec.TokenService {
	t.Helper()

	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	frozen := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return sec.NewTokenServiceFromKey(privateKey, constants.AuthIssuer, func() time.Time { return frozen })
}

func adminPrincipal() *identity.Principal {
	return &identity.Principal{
		Kind:        identity.KindAdmin,
		NaturalKey:  "LC2101-CDOE",
		DisplayName: "Chennai Distance Education",
		Active:      true,
		Privileged:  true,
		SourceDB:    dbrouter.DatabaseAdmin,
	}
}

func userPrincipal() *identity.Principal {
	return &identity.Principal{
		Kind:        identity.KindUser,
		NaturalKey:  "LC3001",
		DisplayName: "Coimbatore Learning Centre",
		Active:      true,
		SourceDB:    dbrouter.DatabaseUser,
	}
}

/*
TestIssue_AdminClaimShape verifies the admin natural key travels under the
"code" claim and the user field stays empty.
*/
func TestIssue_AdminClaimShape(t *testing.T) {
	service := newTestTokenService(t)
	issuer := identity.NewTokenIssuer(service)

	pair, err := issuer.Issue(adminPrincipal())
	require.NoError(t, err)

	claims, err := service.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "LC2101-CDOE", claims.Code)
	assert.Empty(t, claims.Number)
	assert.Equal(t, "admin", claims.Kind)
	assert.Equal(t, "Chennai Distance Education", claims.DisplayName)
	assert.Equal(t, "online_edu", claims.SourceDB)
	assert.Equal(t, "LC2101-CDOE", claims.NaturalKey())
	assert.Equal(t, constants.AuthIssuer, claims.Issuer)
}

/*
TestIssue_UserClaimShape verifies the user natural key travels under the
"number" claim and the admin field stays empty.
*/
func TestIssue_UserClaimShape(t *testing.T) {
	service := newTestTokenService(t)
	issuer := identity.NewTokenIssuer(service)

	pair, err := issuer.Issue(userPrincipal())
	require.NoError(t, err)

	claims, err := service.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)

	assert.Equal(t, "LC3001", claims.Number)
	assert.Empty(t, claims.Code)
	assert.Equal(t, "user", claims.Kind)
	assert.Equal(t, "lsc_portal", claims.SourceDB)
	assert.Equal(t, "LC3001", claims.NaturalKey())
}

/*
TestIssue_RefreshTokenIsNotAnAccessToken verifies the token_use separation:
a refresh token fails the access check and vice versa.
*/
func TestIssue_RefreshTokenIsNotAnAccessToken(t *testing.T) {
	service := newTestTokenService(t)
	issuer := identity.NewTokenIssuer(service)

	pair, err := issuer.Issue(userPrincipal())
	require.NoError(t, err)

	// 1. Refresh token is rejected at resource endpoints
	_, err = service.VerifyAccess(pair.RefreshToken)
	assert.Error(t, err)

	// 2. Access token is rejected at the refresh endpoint
	_, err = service.VerifyRefresh(pair.AccessToken)
	assert.Error(t, err)

	// 3. Each passes its own class
	refreshClaims, err := service.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "LC3001", refreshClaims.NaturalKey())

	// 4. Refresh carries only the minimal claims
	assert.Empty(t, refreshClaims.DisplayName)
	assert.Empty(t, refreshClaims.SourceDB)
}

/*
TestIssue_DeterministicExceptJTI verifies that, under a frozen clock, two
issuances for the same principal differ only in the jti nonce.
*/
func TestIssue_DeterministicExceptJTI(t *testing.T) {
	service := newTestTokenService(t)
	issuer := identity.NewTokenIssuer(service)

	first, err := issuer.Issue(adminPrincipal())
	require.NoError(t, err)
	second, err := issuer.Issue(adminPrincipal())
	require.NoError(t, err)

	firstClaims, err := service.VerifyAccess(first.AccessToken)
	require.NoError(t, err)
	secondClaims, err := service.VerifyAccess(second.AccessToken)
	require.NoError(t, err)

	// jti is the only varying claim
	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)

	firstClaims.ID = ""
	secondClaims.ID = ""
	assert.Equal(t, firstClaims, secondClaims)
}

/*
TestIssue_PairMetadata verifies the wire metadata of the issued pair.
*/
func TestIssue_PairMetadata(t *testing.T) {
	service := newTestTokenService(t)
	issuer := identity.NewTokenIssuer(service)

	pair, err := issuer.Issue(userPrincipal())
	require.NoError(t, err)

	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(constants.AccessTokenTTL.Seconds()), pair.ExpiresIn)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}
