package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens("secret")

	tok, err := tokens.Create(42, "sponsor", time.Minute)
	require.NoError(t, err)

	claims, err := tokens.Parse(tok)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "sponsor", claims.Role)
}

func TestTokensParseRejects(t *testing.T) {
	tokens := NewTokens("secret")

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := NewTokens("other").Create(1, "organizer", time.Minute)
		require.NoError(t, err)

		_, err = tokens.Parse(tok)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := tokens.Create(1, "organizer", -time.Minute)
		require.NoError(t, err)

		_, err = tokens.Parse(tok)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Parse("not.a.token")
		assert.Error(t, err)
	})
}
