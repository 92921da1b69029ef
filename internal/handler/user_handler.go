package handler

import (
	"context"
	"net/http"
	"time"

	"videotube-server/internal/middleware"
	"videotube-server/internal/model"
	"videotube-server/internal/ports"
)

type UserHandler struct {
	ports.UserService
	maxUploadBytes int64
}

func NewUserHandler(userService ports.UserService, maxUploadBytes int64) *UserHandler {
	return &UserHandler{userService, maxUploadBytes}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя. avatar обязателен, coverImage опционален
// @Tags Users
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param email formData string true "Email"
// @Param fullname formData string true "Полное имя"
// @Param password formData string true "Пароль"
// @Param avatar formData file true "Аватар"
// @Param coverImage formData file false "Обложка профиля"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые поля, email без @ или нет avatar"
// @Failure 409 {object} requestresponse.ErrorResponse "username или email уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /users/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()

	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		handleServiceError(w, err)
		return
	}
	defer cleanupMultipart(r)

	files, err := saveFormFiles(r.MultipartForm, "avatar", "coverImage")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	user, err := h.UserService.Register(ctx, &model.RegisterInput{
		Username:       r.FormValue("username"),
		Email:          r.FormValue("email"),
		FullName:       r.FormValue("fullname"),
		Password:       r.FormValue("password"),
		AvatarPath:     files["avatar"],
		CoverImagePath: files["coverImage"],
	})
	if err != nil {
		middleware.RecordAuthAttempt("register", false)
		handleServiceError(w, err)
		return
	}
	middleware.RecordAuthAttempt("register", true)

	sendSuccessResponse(w, http.StatusCreated, user, "пользователь успешно зарегистрирован")
}

// CurrentUser godoc
// @Summary Текущий пользователь
// @Description Возвращает пользователя, которого авторизовал access токен
// @Tags Users
// @Produce json
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Router /users/current-user [get]
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.UserService.GetCurrentUser(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendSuccessResponse(w, http.StatusOK, user, "текущий пользователь получен")
}
