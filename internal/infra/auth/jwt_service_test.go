package auth

import (
	"testing"
	"time"

	"roster/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	userID := uuid.New()

	tokenString, err := jwtService.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := jwtService.ValidateToken(tokenString)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)

	// Every issued token carries an expiry claim.
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(jwtService.GetAccessTokenDuration()), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_MissingSecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))

	assert.Error(t, err)
	assert.Nil(t, jwtService)
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := newTestConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 15 * time.Minute}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())
}

func TestJWTService_DefaultTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	assert.Equal(t, defaultAccessTTL, jwtService.GetAccessTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_very_long_for_testing"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	tokenString, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestConfig("test_access_secret_key_very_long_for_testing")
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Nanosecond}

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	tokenString, err := jwtService.GenerateToken(uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := jwtService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TokenWithoutExpiryRejected(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// Hand-crafted token without an exp claim, signed with the right key.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iat": time.Now().Unix(),
	})
	tokenString, err := raw.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsUnexpectedSigningMethod(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	// alg=none tokens must never validate.
	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(tokenString)

	assert.Error(t, err)
	assert.Nil(t, claims)
}
