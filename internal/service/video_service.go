package service

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/microcosm-cc/bluemonday"

	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/ports"
	"videotube-server/internal/security"
	"videotube-server/internal/util"
)

type VideoService struct {
	db              sqlx.ExtContext
	videoRepository ports.VideoRepository
	cacheRepository ports.CacheRepository
	media           ports.MediaStorage
	policy          *bluemonday.Policy
}

func NewVideoService(
	db sqlx.ExtContext,
	videoRepository ports.VideoRepository,
	cacheRepository ports.CacheRepository,
	media ports.MediaStorage,
) *VideoService {
	return &VideoService{
		db:              db,
		videoRepository: videoRepository,
		cacheRepository: cacheRepository,
		media:           media,
		policy:          bluemonday.StrictPolicy(),
	}
}

func (s *VideoService) ListVideos(ctx context.Context, params model.FeedParams) (*model.VideoFeed, error) {
	feed, err := s.videoRepository.ListFeed(ctx, s.db, params)
	if err != nil {
		return nil, apperror.Internal("ошибка получения ленты", err)
	}
	return feed, nil
}

// PublishVideo : загружает видео и превью, затем сохраняет запись.
// Если превью не загрузилось, уже загруженное видео удаляется
func (s *VideoService) PublishVideo(ctx context.Context, owner *model.User, input *model.PublishVideoInput) (*model.Video, error) {
	defer util.RemoveTempFiles(input.VideoPath, input.ThumbnailPath)

	if owner == nil {
		return nil, apperror.Unauthorized("пользователь не авторизован")
	}

	title := s.sanitize(input.Title)
	if title == "" {
		return nil, apperror.Validation("title", "title обязателен")
	}
	if input.VideoPath == "" {
		return nil, apperror.Validation("videoFile", "файл видео обязателен")
	}
	if input.ThumbnailPath == "" {
		return nil, apperror.Validation("thumbnail", "превью обязательно")
	}
	if input.Duration < 0 {
		return nil, apperror.Validation("duration", "duration не может быть отрицательным")
	}

	videoAsset, err := s.media.Upload(ctx, input.VideoPath, "videos")
	if err != nil {
		return nil, apperror.Internal("ошибка загрузки видео", err)
	}

	thumbnail, err := s.media.Upload(ctx, input.ThumbnailPath, "thumbnails")
	if err != nil {
		s.deleteMedia(ctx, videoAsset.PublicID)
		return nil, apperror.Internal("ошибка загрузки превью", err)
	}

	video, err := s.videoRepository.Create(ctx, s.db, &model.Video{
		ID:                uuid.NewString(),
		OwnerID:           owner.ID,
		Title:             title,
		Description:       s.sanitize(input.Description),
		VideoURL:          videoAsset.URL,
		VideoPublicID:     videoAsset.PublicID,
		ThumbnailURL:      thumbnail.URL,
		ThumbnailPublicID: thumbnail.PublicID,
		Duration:          input.Duration,
	})
	if err != nil {
		s.deleteMedia(ctx, videoAsset.PublicID)
		s.deleteMedia(ctx, thumbnail.PublicID)
		return nil, apperror.Internal("ошибка сохранения видео", err)
	}

	return video, nil
}

// GetVideoByID : сначала Redis, затем БД
func (s *VideoService) GetVideoByID(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.Validation("videoId", "невалидный id видео")
	}

	cached, err := s.cacheRepository.GetVideo(ctx, id)
	if err != nil {
		util.Logger.Warn().Err(err).Str("video_id", id).Msg("[VideoService] кэш недоступен")
	}
	if cached != nil {
		return cached, nil
	}

	video, err := s.videoRepository.FindByID(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		return nil, apperror.Internal("ошибка получения видео", err)
	}

	if err := s.cacheRepository.SetVideo(ctx, video); err != nil {
		util.Logger.Warn().Err(err).Str("video_id", id).Msg("[VideoService] не удалось сохранить видео в кэш")
	}

	return video, nil
}

// UpdateVideo : владелец проверяется до любой загрузки.
// После замены превью старый объект удаляется, кэш сбрасывается
func (s *VideoService) UpdateVideo(ctx context.Context, actor *model.User, id string, input *model.UpdateVideoInput) (*model.Video, error) {
	defer util.RemoveTempFiles(input.ThumbnailPath)

	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.Validation("videoId", "невалидный id видео")
	}
	if actor == nil {
		return nil, apperror.Unauthorized("пользователь не авторизован")
	}

	title := s.sanitize(input.Title)
	description := s.sanitize(input.Description)
	if title == "" && description == "" && input.ThumbnailPath == "" {
		return nil, apperror.Validation("title", "нужно передать title, description или thumbnail")
	}

	video, err := s.videoRepository.FindRaw(ctx, s.db, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		return nil, apperror.Internal("ошибка получения видео", err)
	}

	if !security.IsOwner(video.OwnerID, actor) {
		return nil, apperror.Forbidden("изменять видео может только владелец")
	}

	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}

	oldThumbnail, newThumbnail := video.ThumbnailPublicID, ""
	if input.ThumbnailPath != "" {
		thumbnail, err := s.media.Upload(ctx, input.ThumbnailPath, "thumbnails")
		if err != nil {
			return nil, apperror.Internal("ошибка загрузки превью", err)
		}
		newThumbnail = thumbnail.PublicID
		video.ThumbnailURL = thumbnail.URL
		video.ThumbnailPublicID = thumbnail.PublicID
	}

	updated, err := s.videoRepository.Update(ctx, s.db, video)
	if err != nil {
		s.deleteMedia(ctx, newThumbnail)
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, err
		}
		return nil, apperror.Internal("ошибка обновления видео", err)
	}

	if newThumbnail != "" {
		s.deleteMedia(ctx, oldThumbnail)
	}

	if err := s.cacheRepository.DeleteVideo(ctx, id); err != nil {
		util.Logger.Warn().Err(err).Str("video_id", id).Msg("[VideoService] не удалось сбросить кэш")
	}

	return updated, nil
}

// sanitize : теги вырезаются, текст хранится без html-экранирования
func (s *VideoService) sanitize(value string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(strings.TrimSpace(value))))
}

func (s *VideoService) deleteMedia(ctx context.Context, publicID string) {
	if publicID == "" {
		return
	}
	if err := s.media.Delete(ctx, publicID); err != nil {
		util.Logger.Warn().Err(err).Str("public_id", publicID).Msg("[VideoService] не удалось удалить объект")
	}
}
