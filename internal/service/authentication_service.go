package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/ports"
	"videotube-server/internal/security"
	"videotube-server/internal/util"
)

const invalidCredentials = "неверный логин или пароль"

type AuthenticationService struct {
	db                  sqlx.ExtContext
	userRepository      ports.UserRepository
	sessionRepository   ports.SessionRepository
	jwtServiceInterface ports.JWTServiceInterface
}

func NewAuthenticationService(
	db sqlx.ExtContext,
	userRepository ports.UserRepository,
	sessionRepository ports.SessionRepository,
	jwtService ports.JWTServiceInterface,
) *AuthenticationService {
	return &AuthenticationService{
		db:                  db,
		userRepository:      userRepository,
		sessionRepository:   sessionRepository,
		jwtServiceInterface: jwtService,
	}
}

// Login : вход по username или email и паролю.
// Новый refresh токен перезаписывает предыдущую сессию пользователя
func (s *AuthenticationService) Login(ctx context.Context, username, email, password string) (*model.LoginResult, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" && email == "" {
		return nil, apperror.Validation("username", "username или email обязателен")
	}
	if password == "" {
		return nil, apperror.Validation("password", "password обязателен")
	}

	user, err := s.userRepository.FindByLogin(ctx, s.db, username, email)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized(invalidCredentials)
		}
		return nil, apperror.Internal("ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized(invalidCredentials)
	}

	tokens, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	user.RefreshToken = nil

	return &model.LoginResult{
		Tokens: tokens,
		User:   user,
	}, nil
}

// RefreshToken выполняет ротацию пары токенов.
//  1. Токен проверяется ключом refresh токенов.
//  2. Пользователь из токена должен существовать.
//  3. Токен должен совпадать с сохранённым, иначе это повтор уже заменённого токена.
//
// До успешной ротации сохранённая сессия не меняется
func (s *AuthenticationService) RefreshToken(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if refreshToken == "" {
		return nil, apperror.Unauthorized("refresh токен отсутствует")
	}

	claims, err := s.jwtServiceInterface.ParseRefreshToken(refreshToken)
	if err != nil {
		util.Logger.Debug().Err(err).Msg("[AuthService] невалидный refresh токен")
		return nil, apperror.Unauthorized("невалидный или просроченный refresh токен")
	}

	user, err := s.userRepository.FindByUUID(ctx, s.db, claims.UserUUID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("невалидный refresh токен")
		}
		return nil, apperror.Internal("ошибка поиска пользователя", err)
	}

	stored, err := s.sessionRepository.GetActiveRefreshToken(ctx, s.db, user.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.Unauthorized("невалидный refresh токен")
		}
		return nil, apperror.Internal("ошибка чтения сессии", err)
	}

	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return nil, apperror.Unauthorized("refresh токен не совпадает")
	}

	return s.issueSession(ctx, user.ID)
}

// Logout : после выхода ни один ранее выданный refresh токен не пройдёт проверку
func (s *AuthenticationService) Logout(ctx context.Context, userID string) error {
	if err := s.sessionRepository.ClearActiveRefreshToken(ctx, s.db, userID); err != nil {
		return apperror.Internal("не удалось завершить сессию", err)
	}
	return nil
}

func (s *AuthenticationService) issueSession(ctx context.Context, userID string) (*model.TokensPair, error) {
	tokens, err := s.jwtServiceInterface.GenerateTokensPair(userID)
	if err != nil {
		return nil, apperror.Internal("ошибка генерации токенов", err)
	}

	if err := s.sessionRepository.SetActiveRefreshToken(ctx, s.db, userID, tokens.RefreshToken); err != nil {
		return nil, apperror.Internal("не удалось сохранить refresh токен", err)
	}

	return tokens, nil
}
