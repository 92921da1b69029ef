package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model/requestresponse"
	"videotube-server/internal/util"
)

const multipartMemory = 32 << 20

var requestValidator = validator.New()

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		util.Logger.Warn().Err(err).Msg("[Handler] ошибка записи ответа")
	}
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

func sendSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	writeJSON(w, statusCode, requestresponse.SuccessResponse{
		Data:    data,
		Message: message,
	})
}

// handleServiceError : вид ошибки определяет статус, причина внутренних ошибок только в лог
func handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, apperror.ErrValidation):
		statusCode = http.StatusBadRequest
	case errors.Is(err, apperror.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, apperror.ErrForbidden):
		statusCode = http.StatusForbidden
	case errors.Is(err, apperror.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, apperror.ErrConflict):
		statusCode = http.StatusConflict
	}

	message := apperror.Message(err)
	if statusCode == http.StatusInternalServerError {
		util.Logger.Error().Err(err).Msg("[Handler] внутренняя ошибка")
		message = "внутренняя ошибка сервера"
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	sendErrorResponse(w, statusCode, message)
}

func decodeAndValidate(body io.Reader, dst interface{}) error {
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return apperror.Validation("", "некорректный JSON")
	}

	if err := requestValidator.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			first := validationErrors[0]
			field := strings.ToLower(first.Field())
			switch first.Tag() {
			case "required":
				return apperror.Validation(field, fmt.Sprintf("%s обязателен", field))
			case "required_without":
				return apperror.Validation(field, "username или email обязателен")
			default:
				return apperror.Validation(field, fmt.Sprintf("невалидное поле %s", field))
			}
		}
		return apperror.Validation("", "некорректное тело запроса")
	}

	return nil
}

// parseForm : multipart или urlencoded форма с ограничением размера тела
func parseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	err := r.ParseMultipartForm(multipartMemory)
	if errors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apperror.Validation("", "файл слишком большой")
		}
		return apperror.Validation("", "неверный формат запроса")
	}

	return nil
}

// saveFormFiles : сохраняет файлы формы во временную директорию, при ошибке удаляет уже сохранённые
func saveFormFiles(form *multipart.Form, fields ...string) (map[string]string, error) {
	paths := make(map[string]string, len(fields))
	for _, field := range fields {
		path, err := util.SaveFormFile(form, field)
		if err != nil {
			for _, saved := range paths {
				util.RemoveTempFiles(saved)
			}
			return nil, apperror.Internal("ошибка сохранения файла", err)
		}
		paths[field] = path
	}
	return paths, nil
}

func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		r.MultipartForm.RemoveAll()
	}
}
