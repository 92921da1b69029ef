package ports

import (
	"context"

	"videotube-server/internal/model"
)

// MediaStorage : объектное хранилище для видео и изображений
type MediaStorage interface {
	Upload(ctx context.Context, localPath, folder string) (*model.MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}
