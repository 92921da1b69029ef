package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videotube-server/internal/model"
	"videotube-server/internal/security"
)

// SessionRepository : хранит единственный активный refresh токен пользователя
type SessionRepository interface {
	SetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID, token string) error
	GetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) (string, error)
	ClearActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) error
}

type JWTServiceInterface interface {
	GenerateTokensPair(userID string) (*model.TokensPair, error)
	ParseAccessToken(tokenStr string) (*security.Claims, error)
	ParseRefreshToken(tokenStr string) (*security.Claims, error)
}
