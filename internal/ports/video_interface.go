package ports

import (
	"context"

	"github.com/jmoiron/sqlx"

	"videotube-server/internal/model"
)

// VideoRepository : SQL слой
type VideoRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.VideoWithOwner, error)
	FindRaw(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Video, error)
	Update(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error)
	ListFeed(ctx context.Context, exec sqlx.ExtContext, params model.FeedParams) (*model.VideoFeed, error)
}

type VideoService interface {
	ListVideos(ctx context.Context, params model.FeedParams) (*model.VideoFeed, error)
	PublishVideo(ctx context.Context, owner *model.User, input *model.PublishVideoInput) (*model.Video, error)
	GetVideoByID(ctx context.Context, id string) (*model.VideoWithOwner, error)
	UpdateVideo(ctx context.Context, actor *model.User, id string, input *model.UpdateVideoInput) (*model.Video, error)
}
