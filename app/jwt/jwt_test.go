package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundtrip(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), Issuer: "imf-gadgets", TTL: time.Hour}

	token, err := s.Sign("user-1", "agent007")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "agent007", claims.Username)
	assert.Equal(t, "imf-gadgets", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), TTL: time.Hour}
	other := &Signer{Secret: []byte("another-secret"), TTL: time.Hour}

	token, err := s.Sign("user-1", "agent007")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), TTL: -time.Minute}

	token, err := s.Sign("user-1", "agent007")
	require.NoError(t, err)

	_, err = s.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	s := &Signer{Secret: []byte("test-secret"), TTL: time.Hour}

	_, err := s.Parse("not-a-token")
	assert.Error(t, err)
}
