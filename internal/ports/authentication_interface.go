package ports

import (
	"context"

	"videotube-server/internal/model"
)

type AuthenticationService interface {
	Login(ctx context.Context, username, email, password string) (*model.LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, userID string) error
}
