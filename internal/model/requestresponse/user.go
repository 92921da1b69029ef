package requestresponse

import "videotube-server/internal/model"

// RegisterResponse : успешный ответ регистрации
type RegisterResponse struct {
	Data    *model.User `json:"data"`
	Message string      `json:"message" example:"пользователь успешно зарегистрирован"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code int    `json:"code" example:"400"`
	Text string `json:"text" example:"email должен содержать @"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SuccessResponse : стандартная обёртка успешного ответа
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// HealthResponse : состояние зависимостей
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
	Redis    string `json:"redis" example:"ok"`
}
