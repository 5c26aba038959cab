package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestGenerateAndParseToken(t *testing.T) {
	token, err := GenerateToken("account-123", testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	accountID, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "account-123", accountID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("account-123", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken("account-123", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenMalformed(t *testing.T) {
	_, err := ParseToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseToken("", testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
