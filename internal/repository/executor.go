package repository

import (
	"github.com/jmoiron/sqlx"

	"videotube-server/config"
)

// executor : переданный exec (например транзакция), иначе пул соединений репозитория
func executor(database *config.Database, exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return database
}
