package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube-server/config"
	"videotube-server/internal/security"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		AccessSecretKey:  "access-secret",
		RefreshSecretKey: "refresh-secret",
		AccessTokenTTL:   "15m",
		RefreshTokenTTL:  "240h",
		Issuer:           "videotube-server",
	}
}

func TestJWTService_GenerateTokensPair(t *testing.T) {
	service := security.NewJWTService(testJWTConfig())

	pair, err := service.GenerateTokensPair("user-1")
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	accessClaims, err := service.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", accessClaims.UserUUID)
	assert.Equal(t, "user-1", accessClaims.Subject)
	assert.Equal(t, "videotube-server", accessClaims.Issuer)
	assert.NotEmpty(t, accessClaims.ID)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := service.ParseRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", refreshClaims.UserUUID)
	assert.WithinDuration(t, time.Now().Add(240*time.Hour), refreshClaims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_TokensAreUniqueWithinSameSecond(t *testing.T) {
	service := security.NewJWTService(testJWTConfig())

	first, err := service.GenerateTokensPair("user-1")
	require.NoError(t, err)
	second, err := service.GenerateTokensPair("user-1")
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestJWTService_KeysAreNotInterchangeable(t *testing.T) {
	service := security.NewJWTService(testJWTConfig())

	pair, err := service.GenerateTokensPair("user-1")
	require.NoError(t, err)

	_, err = service.ParseRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, security.ErrInvalidToken)

	_, err = service.ParseAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	cfg := testJWTConfig()
	service := security.NewJWTService(cfg)

	claims := security.Claims{
		UserUUID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    cfg.Issuer,
		},
	}

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecretKey))
	require.NoError(t, err)

	noExpiry := claims
	noExpiry.ExpiresAt = nil
	withoutExp, err := jwt.NewWithClaims(jwt.SigningMethodHS512, noExpiry).SignedString([]byte(cfg.AccessSecretKey))
	require.NoError(t, err)

	foreign := claims
	foreign.Issuer = "someone-else"
	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS512, foreign).SignedString([]byte(cfg.AccessSecretKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.jwt"},
		{name: "wrong algorithm", token: hs256},
		{name: "no expiry", token: withoutExp},
		{name: "foreign issuer", token: foreignIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseAccessToken(tt.token)
			assert.ErrorIs(t, err, security.ErrInvalidToken)
		})
	}
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = "-1m"
	service := security.NewJWTService(cfg)

	token, err := service.IssueAccessToken("user-1")
	require.NoError(t, err)

	_, err = service.ParseAccessToken(token)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestJWTService_Misconfiguration(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.RefreshSecretKey = ""
		service := security.NewJWTService(cfg)

		_, err := service.GenerateTokensPair("user-1")
		assert.Error(t, err)

		_, err = service.ParseRefreshToken("anything")
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		cfg := testJWTConfig()
		cfg.AccessTokenTTL = "forever"
		service := security.NewJWTService(cfg)

		_, err := service.IssueAccessToken("user-1")
		assert.Error(t, err)
	})
}
