package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/ports"
	"videotube-server/internal/security"
	"videotube-server/internal/util"
)

type UserService struct {
	db             sqlx.ExtContext
	userRepository ports.UserRepository
	media          ports.MediaStorage
}

func NewUserService(db sqlx.ExtContext, userRepository ports.UserRepository, media ports.MediaStorage) *UserService {
	return &UserService{
		db:             db,
		userRepository: userRepository,
		media:          media,
	}
}

// Register : проверка полей, проверка уникальности, загрузка изображений, создание пользователя.
// Ошибки валидации и конфликта возвращаются до любой записи
func (s *UserService) Register(ctx context.Context, input *model.RegisterInput) (*model.User, error) {
	defer util.RemoveTempFiles(input.AvatarPath, input.CoverImagePath)

	username := strings.ToLower(strings.TrimSpace(input.Username))
	email := strings.ToLower(strings.TrimSpace(input.Email))
	fullName := strings.TrimSpace(input.FullName)

	required := []struct {
		field string
		value string
	}{
		{"username", username},
		{"email", email},
		{"fullname", fullName},
		{"password", strings.TrimSpace(input.Password)},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, apperror.Validation(r.field, "все поля обязательны")
		}
	}

	if !strings.Contains(email, "@") {
		return nil, apperror.Validation("email", "email должен содержать @")
	}
	if len(input.Password) > security.MaxPasswordBytes {
		return nil, apperror.Validation("password", "password не должен быть длиннее 72 байт")
	}
	if input.AvatarPath == "" {
		return nil, apperror.Validation("avatar", "avatar обязателен")
	}

	exists, err := s.userRepository.ExistsByUsernameOrEmail(ctx, s.db, username, email)
	if err != nil {
		return nil, apperror.Internal("ошибка проверки пользователя", err)
	}
	if exists {
		return nil, apperror.Conflict("пользователь с таким email или username уже существует")
	}

	avatar, err := s.media.Upload(ctx, input.AvatarPath, "avatars")
	if err != nil {
		return nil, apperror.Internal("ошибка загрузки avatar", err)
	}

	var cover *model.MediaAsset
	if input.CoverImagePath != "" {
		cover, err = s.media.Upload(ctx, input.CoverImagePath, "covers")
		if err != nil {
			s.cleanupMedia(ctx, avatar.PublicID)
			return nil, apperror.Internal("ошибка загрузки coverImage", err)
		}
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		s.cleanupMedia(ctx, avatar.PublicID, publicID(cover))
		return nil, apperror.Internal("ошибка хэширования пароля", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		FullName:     fullName,
		PasswordHash: passwordHash,
		Avatar:       avatar.URL,
	}
	if cover != nil {
		user.CoverImage = cover.URL
	}

	created, err := s.userRepository.CreateUser(ctx, s.db, user)
	if err != nil {
		s.cleanupMedia(ctx, avatar.PublicID, publicID(cover))
		if errors.Is(err, apperror.ErrConflict) {
			return nil, err
		}
		return nil, apperror.Internal("ошибка создания пользователя", err)
	}

	return created, nil
}

func (s *UserService) GetCurrentUser(ctx context.Context) (*model.User, error) {
	return security.UserFromContext(ctx)
}

func (s *UserService) cleanupMedia(ctx context.Context, publicIDs ...string) {
	for _, id := range publicIDs {
		if id == "" {
			continue
		}
		if err := s.media.Delete(ctx, id); err != nil {
			util.Logger.Warn().Err(err).Str("public_id", id).Msg("[UserService] не удалось удалить загруженный файл")
		}
	}
}

func publicID(asset *model.MediaAsset) string {
	if asset == nil {
		return ""
	}
	return asset.PublicID
}
