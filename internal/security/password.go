package security

import (
	"golang.org/x/crypto/bcrypt"

	"videotube-server/internal/util"
)

const passwordCost = 10

// MaxPasswordBytes : bcrypt не принимает пароли длиннее 72 байт
const MaxPasswordBytes = 72

// HashPassword : bcrypt хэш пароля, соль генерируется для каждого вызова
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		return "", util.LogError("[Security] ошибка хэширования пароля", err)
	}
	return string(hash), nil
}

// CheckPassword : несовпадение и битый хэш дают false, без ошибки
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
