package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"videotube-server/config"
	"videotube-server/internal/model"
	"videotube-server/internal/util"
)

var ErrInvalidToken = errors.New("невалидный токен")

type Claims struct {
	UserUUID string `json:"user_uuid"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

func (service *JWTService) IssueAccessToken(userID string) (string, error) {
	return service.issue(userID, service.AccessSecretKey, service.AccessTokenTTL)
}

func (service *JWTService) IssueRefreshToken(userID string) (string, error) {
	return service.issue(userID, service.RefreshSecretKey, service.RefreshTokenTTL)
}

// GenerateTokensPair : новая пара токенов, каждый со своим jti
func (service *JWTService) GenerateTokensPair(userID string) (*model.TokensPair, error) {
	accessToken, err := service.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}

	refreshToken, err := service.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) ParseAccessToken(tokenStr string) (*Claims, error) {
	return service.parse(tokenStr, service.AccessSecretKey)
}

func (service *JWTService) ParseRefreshToken(tokenStr string) (*Claims, error) {
	return service.parse(tokenStr, service.RefreshSecretKey)
}

func (service *JWTService) issue(userID, secretKey, ttl string) (string, error) {
	if secretKey == "" {
		return "", util.LogError("[JWTService] ошибка подписи токена", fmt.Errorf("ключ подписи не задан"))
	}

	duration, err := time.ParseDuration(ttl)
	if err != nil {
		return "", util.LogError("[JWTService] ошибка парсинга времени жизни токена", err)
	}

	now := time.Now()
	claims := Claims{
		UserUUID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    service.Issuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secretKey))
	if err != nil {
		return "", util.LogError("[JWTService] ошибка подписи токена", err)
	}

	return signed, nil
}

func (service *JWTService) parse(tokenStr, secretKey string) (*Claims, error) {
	if secretKey == "" {
		return nil, util.LogError("[JWTService] ошибка проверки токена", fmt.Errorf("ключ подписи не задан"))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(service.Issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserUUID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
