package security

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/model/requestresponse"
	"videotube-server/internal/util"
)

type contextKey string

const (
	UserContextKey contextKey = "user"

	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

type AccessTokenParser interface {
	ParseAccessToken(tokenStr string) (*Claims, error)
}

// IdentityLoader : загрузка пользователя без хэша пароля и refresh токена
type IdentityLoader interface {
	FindByUUID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.User, error)
}

func JWTMiddleware(parser AccessTokenParser, users IdentityLoader, exec sqlx.ExtContext) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(parser, users, exec, next))
	}
}

func handleAuthentication(parser AccessTokenParser, users IdentityLoader, exec sqlx.ExtContext, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token := ExtractAccessToken(request)
		if token == "" {
			sendUnauthorized(writer, "access токен отсутствует")
			return
		}

		claims, err := parser.ParseAccessToken(token)
		if err != nil {
			util.Logger.Debug().Err(err).Msg("[JWTMiddleware] невалидный access токен")
			sendUnauthorized(writer, "невалидный access токен")
			return
		}

		user, err := users.FindByUUID(request.Context(), exec, claims.UserUUID)
		if err != nil {
			if errors.Is(err, apperror.ErrNotFound) {
				sendUnauthorized(writer, "невалидный access токен")
				return
			}
			util.Logger.Error().Err(err).Msg("[JWTMiddleware] ошибка загрузки пользователя")
			sendError(writer, http.StatusInternalServerError, "внутренняя ошибка сервера")
			return
		}

		next.ServeHTTP(writer, request.WithContext(WithUser(request.Context(), user)))
	}
}

// ExtractAccessToken : cookie accessToken имеет приоритет над заголовком Authorization
func ExtractAccessToken(request *http.Request) string {
	if cookie, err := request.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authorizationHeader := request.Header.Get("Authorization")
	if strings.HasPrefix(authorizationHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authorizationHeader, "Bearer "))
	}

	return ""
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

func UserFromContext(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserContextKey).(*model.User)
	if !ok || user == nil {
		return nil, apperror.Unauthorized("пользователь не авторизован")
	}
	return user, nil
}

func sendUnauthorized(w http.ResponseWriter, text string) {
	sendError(w, http.StatusUnauthorized, text)
}

func sendError(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{Code: code, Text: text},
	})
}
