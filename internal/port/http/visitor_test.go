package http

import (
	"testing"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logger.Logger {
	return logger.NewNopLogger()
}

func TestVisitorTokens_RoundTrip(t *testing.T) {
	tokens := NewVisitorTokens("secret", time.Hour)
	id := uuid.NewString()

	signed, err := tokens.Issue(id)
	require.NoError(t, err)

	got, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestVisitorTokens_Rejects(t *testing.T) {
	issuer := NewVisitorTokens("secret", time.Hour)
	signed, err := issuer.Issue(uuid.NewString())
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		_, err := NewVisitorTokens("other", time.Hour).Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidVisitorToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := NewVisitorTokens("secret", time.Hour)
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := later.Parse(signed)
		assert.ErrorIs(t, err, ErrInvalidVisitorToken)
	})

	t.Run("not a uuid", func(t *testing.T) {
		bad, err := issuer.Issue("visitor-1")
		require.NoError(t, err)
		_, err = issuer.Parse(bad)
		assert.ErrorIs(t, err, ErrInvalidVisitorToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("abc.def.ghi")
		assert.ErrorIs(t, err, ErrInvalidVisitorToken)
	})
}

func TestVisitorTokens_NoExpiry(t *testing.T) {
	tokens := NewVisitorTokens("secret", 0)
	tokens.now = func() time.Time { return time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC) }
	signed, err := tokens.Issue(uuid.NewString())
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Parse(signed)
	assert.NoError(t, err)
}
