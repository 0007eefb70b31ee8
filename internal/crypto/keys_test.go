package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	salt1, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, salt1, SaltSize)

	salt2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, salt1, salt2)
}

func TestGenerateSaltBase64(t *testing.T) {
	saltB64, err := GenerateSaltBase64()
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(saltB64)
	require.NoError(t, err)
	assert.Len(t, decoded, SaltSize)
}

func TestDeriveAuthKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveAuthKey("password123", "user@example.com", salt)
	require.NoError(t, err)
	assert.Len(t, key1, Argon2KeyLen)

	// Детерминированность: те же входы дают тот же ключ
	key2, err := DeriveAuthKey("password123", "user@example.com", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Другой пароль дает другой ключ
	key3, err := DeriveAuthKey("password456", "user@example.com", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)

	// Другой email дает другой ключ
	key4, err := DeriveAuthKey("password123", "other@example.com", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key4)
}

func TestDeriveAuthKey_Validation(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	_, err = DeriveAuthKey("", "user@example.com", salt)
	assert.Error(t, err)

	_, err = DeriveAuthKey("password123", "", salt)
	assert.Error(t, err)

	_, err = DeriveAuthKey("password123", "user@example.com", []byte("short"))
	assert.Error(t, err)
}

func TestHashAuthKey_And_Verify(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key, err := DeriveAuthKey("password123", "user@example.com", salt)
	require.NoError(t, err)

	hash, err := HashAuthKey(key)
	require.NoError(t, err)
	assert.Len(t, hash, 64) // hex-encoded SHA256

	require.NoError(t, VerifyAuthKey(key, hash))

	otherKey, err := DeriveAuthKey("wrong", "user@example.com", salt)
	require.NoError(t, err)
	assert.Error(t, VerifyAuthKey(otherKey, hash))
}

func TestHashAuthKey_Empty(t *testing.T) {
	_, err := HashAuthKey(nil)
	assert.Error(t, err)
}
