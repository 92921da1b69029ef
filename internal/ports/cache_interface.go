package ports

import (
	"context"

	"videotube-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	SetVideo(ctx context.Context, video *model.VideoWithOwner) error
	GetVideo(ctx context.Context, id string) (*model.VideoWithOwner, error)
	DeleteVideo(ctx context.Context, id string) error
}
