package pkg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	maker, err := NewTokenMaker("test-secret-0123456789")
	require.NoError(t, err)

	token, err := maker.Generate(42, "asha@x.com")
	require.NoError(t, err)

	claims, err := maker.Parse(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "asha@x.com", claims.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	maker, err := NewTokenMaker("test-secret-0123456789")
	require.NoError(t, err)
	other, err := NewTokenMaker("a-completely-different-secret")
	require.NoError(t, err)

	token, err := maker.Generate(42, "asha@x.com")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenExpired(t *testing.T) {
	maker, err := NewTokenMaker("test-secret-0123456789")
	require.NoError(t, err)

	token, err := maker.GenerateWithTTL(42, "asha@x.com", -time.Minute)
	require.NoError(t, err)

	_, err = maker.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenMakerRequiresSecret(t *testing.T) {
	_, err := NewTokenMaker("")
	assert.Error(t, err)
}
