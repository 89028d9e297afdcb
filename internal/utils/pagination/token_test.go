package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	transactionDate := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 15, 14, 30, 45, 123456000, time.UTC)

	token := EncodeToken(transactionDate, createdAt)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "=", "token should not carry padding")
	assert.NotContains(t, token, "+", "token should be URL safe")

	decodedDate, decodedCreatedAt, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, transactionDate.Equal(decodedDate))
	assert.True(t, createdAt.Equal(decodedCreatedAt))

	// Non-UTC inputs are normalized.
	loc := time.FixedZone("BRT", -3*60*60)
	local := time.Date(2024, 3, 15, 9, 0, 0, 0, loc)
	decodedDate, _, err = DecodeToken(EncodeToken(local, local))
	require.NoError(t, err)
	assert.True(t, local.Equal(decodedDate))
	assert.Equal(t, time.UTC, decodedDate.Location())
}

func TestDecodeTokenError(t *testing.T) {
	_, _, err := DecodeToken("this is not base64!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.RawURLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(noSeparator)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badDate := base64.RawURLEncoding.EncodeToString([]byte("notadate|2024-03-15T00:00:00Z"))
	_, _, err = DecodeToken(badDate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transaction date parse")

	badCreatedAt := base64.RawURLEncoding.EncodeToString([]byte("2024-03-15T00:00:00Z|later"))
	_, _, err = DecodeToken(badCreatedAt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}
