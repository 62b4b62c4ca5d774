package utils

import (
	"testing"
	"time"

	"quizbuilder/backend/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "testsecret", TokenTTL: 1440 * time.Minute}
}

func TestGenerateAndParseToken(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWTToken("user@example.com", cfg)
	require.NoError(t, err)

	email, err := ParseToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", email)
}

func TestTokenExpiryUsesConfiguredLifetime(t *testing.T) {
	cfg := testConfig()
	issued := time.Now().Truncate(time.Second)

	token, err := generateJWTTokenAt("user@example.com", cfg, issued)
	require.NoError(t, err)

	var claims jwt.RegisteredClaims
	_, _, err = jwt.NewParser().ParseUnverified(token, &claims)
	require.NoError(t, err)
	assert.Equal(t, issued.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestParseTokenRejectsWrongSecretExpiredAndMissing(t *testing.T) {
	cfg := testConfig()

	stale := &config.Config{JWTSecret: "old-secret", TokenTTL: cfg.TokenTTL}
	wrongSecret, err := GenerateJWTToken("user@example.com", stale)
	require.NoError(t, err)

	expired, err := generateJWTTokenAt("user@example.com", cfg, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"wrong secret": wrongSecret,
		"expired":      expired,
		"missing":      "",
		"garbage":      "not.a.token",
	} {
		_, err := ParseToken(token, cfg)
		assert.ErrorIs(t, err, ErrInvalidToken, name)
	}
}

func TestParseTokenRejectsOtherSigningMethods(t *testing.T) {
	cfg := testConfig()
	claims := jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(token, cfg)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
