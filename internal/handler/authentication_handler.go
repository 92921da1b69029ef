package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"videotube-server/config"
	"videotube-server/internal/middleware"
	"videotube-server/internal/model"
	"videotube-server/internal/model/requestresponse"
	"videotube-server/internal/ports"
	"videotube-server/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
	cookie     config.CookieConfig
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthenticationHandler(
	authenticationService ports.AuthenticationService,
	cookieCfg *config.CookieConfig,
	jwtCfg *config.JWTConfig,
) *AuthenticationHandler {
	accessTTL, _ := time.ParseDuration(jwtCfg.AccessTokenTTL)
	refreshTTL, _ := time.ParseDuration(jwtCfg.RefreshTokenTTL)

	return &AuthenticationHandler{
		AuthenticationService: authenticationService,
		cookie:                *cookieCfg,
		accessTTL:             accessTTL,
		refreshTTL:            refreshTTL,
	}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Вход по username или email и паролю. Токены возвращаются в теле ответа и в HttpOnly cookie
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 429 {object} requestresponse.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		middleware.RecordAuthAttempt("login", false)
		handleServiceError(w, err)
		return
	}

	result, err := h.AuthenticationService.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		middleware.RecordAuthAttempt("login", false)
		handleServiceError(w, err)
		return
	}
	middleware.RecordAuthAttempt("login", true)

	h.setTokenCookies(w, result.Tokens)
	sendSuccessResponse(w, http.StatusOK, requestresponse.LoginData{
		User:         result.User,
		AccessToken:  result.Tokens.AccessToken,
		RefreshToken: result.Tokens.RefreshToken,
	}, "пользователь успешно вошёл")
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Ротация пары токенов. Refresh токен берётся из cookie refreshToken, иначе из тела запроса
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest false "Тело запроса"
// @Success 200 {object} requestresponse.RefreshTokenResponse "Новые access и refresh токены"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный, просроченный или заменённый refresh токен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/refresh-access-token [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie(security.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}

	if refreshToken == "" {
		var req requestresponse.RefreshTokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			sendErrorResponse(w, http.StatusBadRequest, "некорректный JSON")
			return
		}
		refreshToken = strings.TrimSpace(req.RefreshToken)
	}

	tokens, err := h.AuthenticationService.RefreshToken(r.Context(), refreshToken)
	if err != nil {
		middleware.RecordAuthAttempt("refresh", false)
		handleServiceError(w, err)
		return
	}
	middleware.RecordAuthAttempt("refresh", true)

	h.setTokenCookies(w, tokens)
	sendSuccessResponse(w, http.StatusOK, tokens, "access токен обновлён")
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет сохранённый refresh токен и очищает cookie
// @Tags Authentication
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /users/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, err := security.UserFromContext(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := h.AuthenticationService.Logout(r.Context(), user.ID); err != nil {
		middleware.RecordAuthAttempt("logout", false)
		handleServiceError(w, err)
		return
	}
	middleware.RecordAuthAttempt("logout", true)

	h.clearTokenCookies(w)
	sendSuccessResponse(w, http.StatusOK, struct{}{}, "пользователь вышел")
}

func (h *AuthenticationHandler) setTokenCookies(w http.ResponseWriter, tokens *model.TokensPair) {
	http.SetCookie(w, h.newCookie(security.AccessTokenCookie, tokens.AccessToken, h.accessTTL))
	http.SetCookie(w, h.newCookie(security.RefreshTokenCookie, tokens.RefreshToken, h.refreshTTL))
}

func (h *AuthenticationHandler) clearTokenCookies(w http.ResponseWriter) {
	for _, name := range []string{security.AccessTokenCookie, security.RefreshTokenCookie} {
		cookie := h.newCookie(name, "", 0)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		http.SetCookie(w, cookie)
	}
}

func (h *AuthenticationHandler) newCookie(name, value string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSiteMode(h.cookie.SameSite),
		MaxAge:   int(ttl.Seconds()),
	}
}

func sameSiteMode(value string) http.SameSite {
	switch strings.ToLower(value) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
