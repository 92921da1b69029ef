package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"videotube-server/config"
	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/util"
)

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
)

// колонки без password_hash и refresh_token
const userPublicColumns = `id, username, email, full_name, avatar, cover_image, created_at, updated_at`

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя, нарушение уникальности отдаёт Conflict
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	exec = executor(r.Database, exec)
	query := `
	INSERT INTO users (id, username, email, full_name, password_hash, avatar, cover_image)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + userPublicColumns

	createdUser := &model.User{}
	err := sqlx.GetContext(ctx, exec, createdUser, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.PasswordHash,
		user.Avatar,
		user.CoverImage,
	)
	if err != nil {
		if pgErrorCode(err) == uniqueViolation {
			return nil, apperror.Conflict("пользователь с таким email или username уже существует")
		}
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByUUID : ищет пользователя по id, секреты не выбираются
func (r *UserRepository) FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	exec = executor(r.Database, exec)
	query := `SELECT ` + userPublicColumns + ` FROM users WHERE id = $1`

	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || pgErrorCode(err) == invalidTextRepresentation {
			return nil, apperror.NotFound("пользователь", id)
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByLogin : ищет пользователя по username или email вместе с хэшем пароля
func (r *UserRepository) FindByLogin(ctx context.Context, exec sqlx.ExtContext, username, email string) (*model.User, error) {
	exec = executor(r.Database, exec)
	query := `
	SELECT ` + userPublicColumns + `, password_hash
	FROM users
	WHERE ($1 <> '' AND username = $1) OR ($2 <> '' AND email = $2)
	LIMIT 1`

	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, username, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("пользователь", username+email)
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по логину", err)
	}
	return &user, nil
}

// ExistsByUsernameOrEmail : занят ли username или email
func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, exec sqlx.ExtContext, username, email string) (bool, error) {
	exec = executor(r.Database, exec)
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 OR email = $2)`
	err := sqlx.GetContext(ctx, exec, &exists, query, username, email)
	if err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки существования пользователя", err)
	}
	return exists, nil
}

func pgErrorCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
