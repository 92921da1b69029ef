package requestresponse

import "videotube-server/internal/model"

// LoginRequest : тело запроса на аутентификацию, нужен username или email
type LoginRequest struct {
	Username string `json:"username" validate:"required_without=Email" example:"johndoe"`
	Email    string `json:"email" validate:"required_without=Username" example:"john@example.com"`
	Password string `json:"password" validate:"required" example:"P@ssw0rd123"`
}

// LoginData : пользователь и пара токенов
type LoginData struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"accessToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string      `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// LoginResponse : ответ на успешную аутентификацию
type LoginResponse struct {
	Data    LoginData `json:"data"`
	Message string    `json:"message" example:"пользователь успешно вошёл"`
}

// RefreshTokenRequest : refresh токен, если он не пришёл в cookie
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// RefreshTokenResponse : новая пара токенов
type RefreshTokenResponse struct {
	Data    model.TokensPair `json:"data"`
	Message string           `json:"message" example:"access токен обновлён"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	Data    *model.User `json:"data"`
	Message string      `json:"message" example:"текущий пользователь получен"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Data    struct{} `json:"data"`
	Message string   `json:"message" example:"пользователь вышел"`
}
