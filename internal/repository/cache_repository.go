package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"videotube-server/config"
	"videotube-server/internal/model"
	"videotube-server/internal/util"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetVideo(ctx context.Context, video *model.VideoWithOwner) error {
	data, err := json.Marshal(video)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации видео", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(video.ID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

// GetVideo : nil без ошибки, если в кэше нет
func (r *CacheRepository) GetVideo(ctx context.Context, id string) (*model.VideoWithOwner, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения видео из Redis", err)
	}

	var video model.VideoWithOwner
	if err := json.Unmarshal(val, &video); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации видео из кэша", err)
	}
	return &video, nil
}

func (r *CacheRepository) DeleteVideo(ctx context.Context, id string) error {
	if err := r.client.Client.Del(ctx, r.key(id)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления видео из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id string) string {
	return fmt.Sprintf("video:%s", id)
}
