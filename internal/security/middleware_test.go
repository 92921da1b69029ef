package security_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/model/requestresponse"
	"videotube-server/internal/security"
)

type fakeIdentityLoader struct {
	users map[string]*model.User
	err   error
}

func (f *fakeIdentityLoader) FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, apperror.NotFound("пользователь", id)
	}
	return user, nil
}

func TestJWTMiddleware(t *testing.T) {
	service := security.NewJWTService(testJWTConfig())

	alice := &model.User{ID: "alice", Username: "alice"}
	bob := &model.User{ID: "bob", Username: "bob"}
	loader := &fakeIdentityLoader{users: map[string]*model.User{"alice": alice, "bob": bob}}

	aliceToken, err := service.IssueAccessToken("alice")
	require.NoError(t, err)
	bobToken, err := service.IssueAccessToken("bob")
	require.NoError(t, err)
	ghostToken, err := service.IssueAccessToken("ghost")
	require.NoError(t, err)
	aliceRefresh, err := service.IssueRefreshToken("alice")
	require.NoError(t, err)

	tests := []struct {
		name         string
		loader       *fakeIdentityLoader
		cookie       string
		header       string
		expectStatus int
		expectUser   string
		expectText   string
	}{
		{
			name:         "missing token",
			loader:       loader,
			expectStatus: http.StatusUnauthorized,
			expectText:   "access токен отсутствует",
		},
		{
			name:         "bearer header",
			loader:       loader,
			header:       "Bearer " + bobToken,
			expectStatus: http.StatusOK,
			expectUser:   "bob",
		},
		{
			name:         "cookie preferred over header",
			loader:       loader,
			cookie:       aliceToken,
			header:       "Bearer " + bobToken,
			expectStatus: http.StatusOK,
			expectUser:   "alice",
		},
		{
			name:         "header without bearer prefix",
			loader:       loader,
			header:       aliceToken,
			expectStatus: http.StatusUnauthorized,
			expectText:   "access токен отсутствует",
		},
		{
			name:         "refresh token as access",
			loader:       loader,
			header:       "Bearer " + aliceRefresh,
			expectStatus: http.StatusUnauthorized,
			expectText:   "невалидный access токен",
		},
		{
			name:         "unknown user",
			loader:       loader,
			cookie:       ghostToken,
			expectStatus: http.StatusUnauthorized,
			expectText:   "невалидный access токен",
		},
		{
			name:         "database failure",
			loader:       &fakeIdentityLoader{err: errors.New("connection refused")},
			cookie:       aliceToken,
			expectStatus: http.StatusInternalServerError,
			expectText:   "внутренняя ошибка сервера",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *model.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, err := security.UserFromContext(r.Context())
				require.NoError(t, err)
				gotUser = user
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/current-user", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: security.AccessTokenCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			security.JWTMiddleware(service, tt.loader, nil)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			if tt.expectUser != "" {
				require.NotNil(t, gotUser)
				assert.Equal(t, tt.expectUser, gotUser.ID)
				return
			}

			assert.Nil(t, gotUser)
			var body requestresponse.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.expectStatus, body.Error.Code)
			assert.Equal(t, tt.expectText, body.Error.Text)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	_, err := security.UserFromContext(context.Background())
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestIsOwner(t *testing.T) {
	owner := &model.User{ID: "owner-1"}

	assert.True(t, security.IsOwner("owner-1", owner))
	assert.False(t, security.IsOwner("owner-2", owner))
	assert.False(t, security.IsOwner("owner-1", nil))
	assert.False(t, security.IsOwner("", &model.User{}))
}
