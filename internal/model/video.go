package model

import "time"

type Video struct {
	ID                string    `db:"id" json:"_id"`
	OwnerID           string    `db:"owner_id" json:"owner"`
	Title             string    `db:"title" json:"title"`
	Description       string    `db:"description" json:"description"`
	VideoURL          string    `db:"video_url" json:"videoFile"`
	VideoPublicID     string    `db:"video_public_id" json:"videoPublicId"`
	ThumbnailURL      string    `db:"thumbnail_url" json:"thumbnail"`
	ThumbnailPublicID string    `db:"thumbnail_public_id" json:"thumbnailPublicId"`
	Duration          float64   `db:"duration" json:"duration"`
	Views             int64     `db:"views" json:"views"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// VideoWithOwner : видео вместе с проекцией владельца, владелец nil если запись пользователя пропала
type VideoWithOwner struct {
	ID                string        `json:"_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	VideoURL          string        `json:"videoFile"`
	VideoPublicID     string        `json:"videoPublicId"`
	ThumbnailURL      string        `json:"thumbnail"`
	ThumbnailPublicID string        `json:"thumbnailPublicId"`
	Duration          float64       `json:"duration"`
	Views             int64         `json:"views"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	OwnerID           string        `json:"ownerId"`
	Owner             *OwnerSummary `json:"owner"`
}

// MediaAsset : результат загрузки в объектное хранилище
type MediaAsset struct {
	URL      string
	PublicID string
}

// FeedParams : нормализованные параметры ленты
type FeedParams struct {
	Page       int
	Limit      int
	Query      string
	SortColumn string
	SortDesc   bool
}

func (p FeedParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

type VideoFeed struct {
	Items      []VideoWithOwner `json:"videos"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

// PublishVideoInput : пути к временным файлам и поля формы
type PublishVideoInput struct {
	Title         string
	Description   string
	Duration      float64
	VideoPath     string
	ThumbnailPath string
}

type UpdateVideoInput struct {
	Title         string
	Description   string
	ThumbnailPath string
}
