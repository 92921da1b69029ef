package service_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/security"
	srv "videotube-server/internal/service"
)

func tempUpload(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	return path
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()
	avatar := &model.MediaAsset{URL: "https://cdn.example.com/avatars/a.png", PublicID: "avatars/a.png"}
	cover := &model.MediaAsset{URL: "https://cdn.example.com/covers/c.png", PublicID: "covers/c.png"}

	validInput := func(t *testing.T) *model.RegisterInput {
		return &model.RegisterInput{
			Username:   "JohnDoe",
			Email:      "John@Example.com",
			FullName:   "John Doe",
			Password:   "StrongPass123!",
			AvatarPath: tempUpload(t, "avatar.png"),
		}
	}

	tests := []struct {
		name       string
		input      func(t *testing.T) *model.RegisterInput
		setupMocks func(u *MockUserRepository, m *MockMediaStorage)
		expectErr  error
		expectText string
		noWrites   bool
	}{
		{
			name: "email without at sign",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.Email = "john.example.com"
				return in
			},
			expectErr:  apperror.ErrValidation,
			expectText: "email должен содержать @",
			noWrites:   true,
		},
		{
			name: "blank full name",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.FullName = "   "
				return in
			},
			expectErr:  apperror.ErrValidation,
			expectText: "все поля обязательны",
			noWrites:   true,
		},
		{
			name: "password longer than bcrypt limit",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.Password = strings.Repeat("p", security.MaxPasswordBytes+1)
				return in
			},
			expectErr:  apperror.ErrValidation,
			expectText: "password не должен быть длиннее 72 байт",
			noWrites:   true,
		},
		{
			name: "missing avatar",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.AvatarPath = ""
				return in
			},
			expectErr:  apperror.ErrValidation,
			expectText: "avatar обязателен",
			noWrites:   true,
		},
		{
			name:  "duplicate username",
			input: validInput,
			setupMocks: func(u *MockUserRepository, m *MockMediaStorage) {
				u.On("ExistsByUsernameOrEmail", ctx, mock.Anything, "johndoe", "john@example.com").Return(true, nil)
			},
			expectErr:  apperror.ErrConflict,
			expectText: "пользователь с таким email или username уже существует",
			noWrites:   true,
		},
		{
			name:  "avatar upload fails",
			input: validInput,
			setupMocks: func(u *MockUserRepository, m *MockMediaStorage) {
				u.On("ExistsByUsernameOrEmail", ctx, mock.Anything, "johndoe", "john@example.com").Return(false, nil)
				m.On("Upload", ctx, mock.Anything, "avatars").Return(nil, errors.New("s3 down"))
			},
			expectErr: apperror.ErrInternal,
		},
		{
			name: "cover upload fails removes avatar",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.CoverImagePath = tempUpload(t, "cover.png")
				return in
			},
			setupMocks: func(u *MockUserRepository, m *MockMediaStorage) {
				u.On("ExistsByUsernameOrEmail", ctx, mock.Anything, "johndoe", "john@example.com").Return(false, nil)
				m.On("Upload", ctx, mock.Anything, "avatars").Return(avatar, nil)
				m.On("Upload", ctx, mock.Anything, "covers").Return(nil, errors.New("s3 down"))
				m.On("Delete", ctx, "avatars/a.png").Return(nil)
			},
			expectErr: apperror.ErrInternal,
		},
		{
			name:  "unique violation on insert",
			input: validInput,
			setupMocks: func(u *MockUserRepository, m *MockMediaStorage) {
				u.On("ExistsByUsernameOrEmail", ctx, mock.Anything, "johndoe", "john@example.com").Return(false, nil)
				m.On("Upload", ctx, mock.Anything, "avatars").Return(avatar, nil)
				u.On("CreateUser", ctx, mock.Anything, mock.Anything).
					Return(nil, apperror.Conflict("пользователь с таким email или username уже существует"))
				m.On("Delete", ctx, "avatars/a.png").Return(nil)
			},
			expectErr: apperror.ErrConflict,
		},
		{
			name: "success",
			input: func(t *testing.T) *model.RegisterInput {
				in := validInput(t)
				in.CoverImagePath = tempUpload(t, "cover.png")
				return in
			},
			setupMocks: func(u *MockUserRepository, m *MockMediaStorage) {
				u.On("ExistsByUsernameOrEmail", ctx, mock.Anything, "johndoe", "john@example.com").Return(false, nil)
				m.On("Upload", ctx, mock.Anything, "avatars").Return(avatar, nil)
				m.On("Upload", ctx, mock.Anything, "covers").Return(cover, nil)
				u.On("CreateUser", ctx, mock.Anything, mock.MatchedBy(func(user *model.User) bool {
					return user.Username == "johndoe" &&
						user.Email == "john@example.com" &&
						user.FullName == "John Doe" &&
						user.Avatar == avatar.URL &&
						user.CoverImage == cover.URL &&
						user.ID != "" &&
						security.CheckPassword("StrongPass123!", user.PasswordHash)
				})).Return(&model.User{ID: "user-1", Username: "johndoe", Email: "john@example.com"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			media := new(MockMediaStorage)
			service := srv.NewUserService(nil, users, media)

			if tt.setupMocks != nil {
				tt.setupMocks(users, media)
			}

			input := tt.input(t)
			user, err := service.Register(ctx, input)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				if tt.expectText != "" {
					assert.Equal(t, tt.expectText, apperror.Message(err))
				}
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "user-1", user.ID)
			}

			users.AssertExpectations(t)
			media.AssertExpectations(t)
			if tt.noWrites {
				users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
				media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
			}

			for _, path := range []string{input.AvatarPath, input.CoverImagePath} {
				if path == "" {
					continue
				}
				_, statErr := os.Stat(path)
				assert.True(t, os.IsNotExist(statErr), "временный файл %s должен быть удалён", path)
			}
		})
	}
}

func TestUserService_GetCurrentUser(t *testing.T) {
	service := srv.NewUserService(nil, new(MockUserRepository), new(MockMediaStorage))

	_, err := service.GetCurrentUser(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	user := &model.User{ID: "user-1"}
	got, err := service.GetCurrentUser(security.WithUser(context.Background(), user))
	require.NoError(t, err)
	assert.Same(t, user, got)
}
