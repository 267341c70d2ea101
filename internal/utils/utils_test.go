package utils

import (
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret!", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("", ""))
}

func TestGenerateJWTCarriesUserIDAsSubject(t *testing.T) {
	token, expiresAt, err := GenerateJWT(42, "secret", time.Hour, "finance-tracker")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 2*time.Second)

	claims, err := ParseAndValidateJWT(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(42), claims.Subject)
	assert.Equal(t, "finance-tracker", claims.Issuer)

	_, err = ParseAndValidateJWT(token, "other-secret")
	assert.Error(t, err)
}

func TestWithRandomSuffix(t *testing.T) {
	name, err := WithRandomSuffix("alice", 50)
	require.NoError(t, err)
	assert.Regexp(t, `^alice_[0-9a-f]{6}$`, name)

	name, err = WithRandomSuffix(strings.Repeat("x", 60), 50)
	require.NoError(t, err)
	assert.Len(t, name, 50)

	_, err = WithRandomSuffix("alice", 3)
	assert.Error(t, err)
}

func TestUninitializedPosthogClientIsNoop(t *testing.T) {
	w := InitializePosthogClient("", slog.Default())
	assert.False(t, w.IsInitialized())
	w.Enqueue("1", "event", nil)
	w.Close()

	var nilWrapper *PosthogClientWrapper
	assert.False(t, nilWrapper.IsInitialized())
}
