package requestresponse

import "videotube-server/internal/model"

// VideoFeedResponse : страница ленты
type VideoFeedResponse struct {
	Data    model.VideoFeed `json:"data"`
	Message string          `json:"message" example:"видео получены"`
}

// VideoResponse : одно видео с владельцем
type VideoResponse struct {
	Data    *model.VideoWithOwner `json:"data"`
	Message string                `json:"message" example:"видео получено"`
}

// PublishVideoResponse : созданное видео
type PublishVideoResponse struct {
	Data    *model.Video `json:"data"`
	Message string       `json:"message" example:"видео опубликовано"`
}
