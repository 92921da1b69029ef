package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"videotube-server/internal/model"
	"videotube-server/internal/ports"
	"videotube-server/internal/repository"
	"videotube-server/internal/security"
)

const (
	videoUploadTimeout = 10 * time.Minute
	imageUploadTimeout = time.Minute
)

type VideoHandler struct {
	ports.VideoService
	maxUploadBytes int64
}

func NewVideoHandler(videoService ports.VideoService, maxUploadBytes int64) *VideoHandler {
	return &VideoHandler{videoService, maxUploadBytes}
}

// ListVideos godoc
// @Summary Лента видео
// @Description Страница видео с владельцами и общим количеством. Сортировка только по createdAt, views, title
// @Tags Videos
// @Produce json
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Param query query string false "Поиск по названию"
// @Param sortBy query string false "createdAt, views или title" default(createdAt)
// @Param sortType query string false "asc или desc" default(desc)
// @Success 200 {object} requestresponse.VideoFeedResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /videos [get]
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.NewFeedParams(q.Get("page"), q.Get("limit"), q.Get("query"), q.Get("sortBy"), q.Get("sortType"))

	feed, err := h.VideoService.ListVideos(r.Context(), params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendSuccessResponse(w, http.StatusOK, feed, "видео получены")
}

// PublishVideo godoc
// @Summary Публикация видео
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Название"
// @Param description formData string false "Описание"
// @Param duration formData number false "Длительность в секундах"
// @Param videoFile formData file true "Видео"
// @Param thumbnail formData file true "Превью"
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.PublishVideoResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /videos [post]
func (h *VideoHandler) PublishVideo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), videoUploadTimeout)
	defer cancel()

	owner, err := security.UserFromContext(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		handleServiceError(w, err)
		return
	}
	defer cleanupMultipart(r)

	duration := 0.0
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		duration, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			sendErrorResponse(w, http.StatusBadRequest, "duration должен быть числом")
			return
		}
	}

	files, err := saveFormFiles(r.MultipartForm, "videoFile", "thumbnail")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	video, err := h.VideoService.PublishVideo(ctx, owner, &model.PublishVideoInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		Duration:      duration,
		VideoPath:     files["videoFile"],
		ThumbnailPath: files["thumbnail"],
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendSuccessResponse(w, http.StatusCreated, video, "видео опубликовано")
}

// GetVideoByID godoc
// @Summary Видео по id
// @Tags Videos
// @Produce json
// @Param videoId path string true "UUID видео"
// @Success 200 {object} requestresponse.VideoResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Невалидный id"
// @Failure 404 {object} requestresponse.ErrorResponse "Видео не найдено"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /videos/{videoId} [get]
func (h *VideoHandler) GetVideoByID(w http.ResponseWriter, r *http.Request) {
	video, err := h.VideoService.GetVideoByID(r.Context(), chi.URLParam(r, "videoId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendSuccessResponse(w, http.StatusOK, video, "видео получено")
}

// UpdateVideo godoc
// @Summary Изменение видео
// @Description Меняет title, description и превью. Доступно только владельцу
// @Tags Videos
// @Accept multipart/form-data
// @Produce json
// @Param videoId path string true "UUID видео"
// @Param title formData string false "Название"
// @Param description formData string false "Описание"
// @Param thumbnail formData file false "Новое превью"
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.PublishVideoResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Не владелец"
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /videos/{videoId} [patch]
func (h *VideoHandler) UpdateVideo(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), imageUploadTimeout)
	defer cancel()

	actor, err := security.UserFromContext(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if err := parseForm(w, r, h.maxUploadBytes); err != nil {
		handleServiceError(w, err)
		return
	}
	defer cleanupMultipart(r)

	files, err := saveFormFiles(r.MultipartForm, "thumbnail")
	if err != nil {
		handleServiceError(w, err)
		return
	}

	video, err := h.VideoService.UpdateVideo(ctx, actor, chi.URLParam(r, "videoId"), &model.UpdateVideoInput{
		Title:         r.FormValue("title"),
		Description:   r.FormValue("description"),
		ThumbnailPath: files["thumbnail"],
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	sendSuccessResponse(w, http.StatusOK, video, "видео обновлено")
}
