package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	tm := NewTokenManager("test-secret", 2*time.Hour).WithClock(func() time.Time { return issuedAt })

	token, exp, err := tm.GenerateToken("admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, issuedAt.Add(2*time.Hour), exp)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	session := claims.Session()
	assert.Equal(t, "admin", session.Username)
	assert.True(t, session.ExpiresAt.Equal(issuedAt.Add(2*time.Hour)))
	assert.True(t, session.IssuedAt.Equal(issuedAt))
}

func TestTokenManager_ExpiredTokenRejected(t *testing.T) {
	issuedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewTokenManager("test-secret", 2*time.Hour).WithClock(func() time.Time { return issuedAt })

	token, _, err := issuer.GenerateToken("admin")
	require.NoError(t, err)

	verifier := issuer.WithClock(func() time.Time { return issuedAt.Add(2*time.Hour + time.Second) })
	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.NotErrorIs(t, err, ErrTokenMissing)
}

func TestTokenManager_Rejections(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	other := NewTokenManager("other-secret", time.Hour)

	foreign, _, err := other.GenerateToken("admin")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Username: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Username: "admin"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "empty", token: "", want: ErrTokenMissing},
		{name: "garbage", token: "not.a.jwt", want: ErrTokenInvalid},
		{name: "wrong secret", token: foreign, want: ErrTokenInvalid},
		{name: "alg none", token: noneToken, want: ErrTokenInvalid},
		{name: "no expiry", token: noExpiry, want: ErrTokenInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ParseToken(tt.token)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("s", 0)
	assert.Equal(t, 2*time.Hour, tm.ttl)
}
