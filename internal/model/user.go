package model

import "time"

// User : учётная запись. PasswordHash и RefreshToken никогда не сериализуются
type User struct {
	ID           string    `db:"id" json:"_id"`
	Username     string    `db:"username" json:"username"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"fullname"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Avatar       string    `db:"avatar" json:"avatar"`
	CoverImage   string    `db:"cover_image" json:"coverImage"`
	RefreshToken *string   `db:"refresh_token" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// OwnerSummary : проекция владельца видео в ленте
type OwnerSummary struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// RegisterInput : данные регистрации, файлы уже сохранены во временную директорию
type RegisterInput struct {
	Username       string
	Email          string
	FullName       string
	Password       string
	AvatarPath     string
	CoverImagePath string
}
