package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"videotube-server/config"
	"videotube-server/internal/apperror"
	"videotube-server/internal/util"
)

// SessionRepository : активный refresh токен хранится в users.refresh_token.
// Запись без блокировок, побеждает последний писатель.
type SessionRepository struct {
	*config.Database
}

func NewSessionRepository(database *config.Database) *SessionRepository {
	return &SessionRepository{database}
}

// SetActiveRefreshToken : перезаписывает refresh токен, остальные колонки не трогает
func (r *SessionRepository) SetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID, token string) error {
	exec = executor(r.Database, exec)
	query := `UPDATE users SET refresh_token = $2 WHERE id = $1`

	result, err := exec.ExecContext(ctx, query, userID, token)
	if err != nil {
		return util.LogError("[SessionRepo] не удалось сохранить refresh токен", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return util.LogError("[SessionRepo] не удалось проверить, обновлен ли токен", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("пользователь", userID)
	}

	return nil
}

// GetActiveRefreshToken : пустая строка если сессии нет
func (r *SessionRepository) GetActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) (string, error) {
	exec = executor(r.Database, exec)
	query := `SELECT refresh_token FROM users WHERE id = $1`

	var token sql.NullString
	err := sqlx.GetContext(ctx, exec, &token, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperror.NotFound("пользователь", userID)
		}
		return "", util.LogError("[SessionRepo] ошибка при выполнении запроса", err)
	}

	return token.String, nil
}

func (r *SessionRepository) ClearActiveRefreshToken(ctx context.Context, exec sqlx.ExtContext, userID string) error {
	exec = executor(r.Database, exec)
	query := `UPDATE users SET refresh_token = NULL WHERE id = $1`

	if _, err := exec.ExecContext(ctx, query, userID); err != nil {
		return util.LogError("[SessionRepo] не удалось очистить refresh токен", err)
	}
	return nil
}
