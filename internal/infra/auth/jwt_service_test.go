package auth

import (
	"testing"
	"time"

	"sitekhata/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := svc.GenerateTokens(userID, []string{"contractor"})
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, []string{"contractor"}, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), []string{"contractor"})
	require.NoError(t, err)

	tampered := accessToken[:len(accessToken)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	require.Error(t, err)
}

func TestJWTService_RejectsTokenFromOtherSecret(t *testing.T) {
	svc, err := NewJWTService(testJWTConfig())
	require.NoError(t, err)

	otherCfg := testJWTConfig()
	otherCfg.SecretKey.Access = "completely-different-secret"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	accessToken, _, err := otherSvc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Nanosecond, RefreshTokenTTL: time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(accessToken)
	require.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_RefreshDuration(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Auth = &config.AuthConfig{RefreshTokenTTL: 48 * time.Hour}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}
