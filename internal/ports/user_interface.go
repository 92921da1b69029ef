package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videotube-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error)
	FindByLogin(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error)
}

type UserService interface {
	Register(ctx context.Context, input *model.RegisterInput) (*model.User, error)
	GetCurrentUser(ctx context.Context) (*model.User, error)
}
