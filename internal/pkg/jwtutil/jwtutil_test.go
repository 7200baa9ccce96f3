package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour, nil)

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseRejectsExpired(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	m := NewManager("secret", time.Hour, clock)

	token, err := m.GenerateToken("user-1")
	require.NoError(t, err)

	clock.Advance(59 * time.Minute)
	_, err = m.ParseToken(token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("one", time.Hour, nil).GenerateToken("user-1")
	require.NoError(t, err)

	_, err = NewManager("two", time.Hour, nil).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewManager("secret", time.Hour, nil).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewManager("secret", time.Hour, nil).ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateRequiresUserID(t *testing.T) {
	_, err := NewManager("secret", time.Hour, nil).GenerateToken("")
	assert.Error(t, err)
}
