package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"videotube-server/config"
	"videotube-server/internal/apperror"
	"videotube-server/internal/model"
	"videotube-server/internal/util"
)

const videoColumns = `id, owner_id, title, description, video_url, video_public_id,
	thumbnail_url, thumbnail_public_id, duration, views, created_at, updated_at`

type VideoRepository struct {
	*config.Database
}

func NewVideoRepository(database *config.Database) *VideoRepository {
	return &VideoRepository{database}
}

type videoOwnerRow struct {
	model.Video
	OwnerUUID     sql.NullString `db:"owner_uuid"`
	OwnerFullName sql.NullString `db:"owner_full_name"`
	OwnerUsername sql.NullString `db:"owner_username"`
	OwnerAvatar   sql.NullString `db:"owner_avatar"`
}

// строка json_agg из ленты
type feedRow struct {
	ID                string     `json:"id"`
	OwnerID           string     `json:"owner_id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	VideoURL          string     `json:"video_url"`
	VideoPublicID     string     `json:"video_public_id"`
	ThumbnailURL      string     `json:"thumbnail_url"`
	ThumbnailPublicID string     `json:"thumbnail_public_id"`
	Duration          float64    `json:"duration"`
	Views             int64      `json:"views"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	Owner             *feedOwner `json:"owner"`
}

type feedOwner struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Create : сохраняет видео, views всегда начинается с нуля
func (r *VideoRepository) Create(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	exec = executor(r.Database, exec)
	query := `
	INSERT INTO videos (id, owner_id, title, description, video_url, video_public_id,
	                    thumbnail_url, thumbnail_public_id, duration)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + videoColumns

	created := &model.Video{}
	err := sqlx.GetContext(ctx, exec, created, query,
		video.ID,
		video.OwnerID,
		video.Title,
		video.Description,
		video.VideoURL,
		video.VideoPublicID,
		video.ThumbnailURL,
		video.ThumbnailPublicID,
		video.Duration,
	)
	if err != nil {
		return nil, util.LogError("[VideoRepo] ошибка вставки видео в БД", err)
	}

	return created, nil
}

// FindByID : видео с проекцией владельца
func (r *VideoRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id string) (*model.VideoWithOwner, error) {
	exec = executor(r.Database, exec)
	query := `
	SELECT v.id, v.owner_id, v.title, v.description, v.video_url, v.video_public_id,
	       v.thumbnail_url, v.thumbnail_public_id, v.duration, v.views, v.created_at, v.updated_at,
	       u.id AS owner_uuid, u.full_name AS owner_full_name, u.username AS owner_username, u.avatar AS owner_avatar
	FROM videos v
	LEFT JOIN users u ON u.id = v.owner_id
	WHERE v.id = $1`

	var row videoOwnerRow
	if err := sqlx.GetContext(ctx, exec, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("видео", id)
		}
		return nil, util.LogError("[VideoRepo] не удалось найти видео", err)
	}

	result := withOwner(row.Video, nil)
	if row.OwnerUUID.Valid {
		result.Owner = &model.OwnerSummary{
			ID:       row.OwnerUUID.String,
			FullName: row.OwnerFullName.String,
			Username: row.OwnerUsername.String,
			Avatar:   row.OwnerAvatar.String,
		}
	}

	return result, nil
}

// FindRaw : видео без join, для проверки владельца
func (r *VideoRepository) FindRaw(ctx context.Context, exec sqlx.ExtContext, id string) (*model.Video, error) {
	exec = executor(r.Database, exec)
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	var video model.Video
	if err := sqlx.GetContext(ctx, exec, &video, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("видео", id)
		}
		return nil, util.LogError("[VideoRepo] не удалось найти видео", err)
	}
	return &video, nil
}

// Update : меняет title, description и превью. Владелец не меняется
func (r *VideoRepository) Update(ctx context.Context, exec sqlx.ExtContext, video *model.Video) (*model.Video, error) {
	exec = executor(r.Database, exec)
	query := `
	UPDATE videos
	SET title = $2, description = $3, thumbnail_url = $4, thumbnail_public_id = $5, updated_at = NOW()
	WHERE id = $1
	RETURNING ` + videoColumns

	updated := &model.Video{}
	err := sqlx.GetContext(ctx, exec, updated, query,
		video.ID,
		video.Title,
		video.Description,
		video.ThumbnailURL,
		video.ThumbnailPublicID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("видео", video.ID)
		}
		return nil, util.LogError("[VideoRepo] не удалось обновить видео", err)
	}
	return updated, nil
}

// ListFeed : страница ленты и общее количество одним запросом
func (r *VideoRepository) ListFeed(ctx context.Context, exec sqlx.ExtContext, params model.FeedParams) (*model.VideoFeed, error) {
	exec = executor(r.Database, exec)
	query, args := BuildVideoFeedQuery(params)

	var result struct {
		TotalCount int64  `db:"total_count"`
		Items      []byte `db:"items"`
	}
	if err := sqlx.GetContext(ctx, exec, &result, query, args...); err != nil {
		return nil, util.LogError("[VideoRepo] не удалось получить ленту", err)
	}

	var rows []feedRow
	if len(result.Items) > 0 {
		if err := json.Unmarshal(result.Items, &rows); err != nil {
			return nil, util.LogError("[VideoRepo] ошибка десериализации ленты", err)
		}
	}

	feed := &model.VideoFeed{
		Items:      make([]model.VideoWithOwner, 0, len(rows)),
		TotalCount: result.TotalCount,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	for _, row := range rows {
		video := model.Video{
			ID:                row.ID,
			OwnerID:           row.OwnerID,
			Title:             row.Title,
			Description:       row.Description,
			VideoURL:          row.VideoURL,
			VideoPublicID:     row.VideoPublicID,
			ThumbnailURL:      row.ThumbnailURL,
			ThumbnailPublicID: row.ThumbnailPublicID,
			Duration:          row.Duration,
			Views:             row.Views,
			CreatedAt:         row.CreatedAt,
			UpdatedAt:         row.UpdatedAt,
		}

		var owner *model.OwnerSummary
		if row.Owner != nil {
			owner = &model.OwnerSummary{
				ID:       row.Owner.ID,
				FullName: row.Owner.FullName,
				Username: row.Owner.Username,
				Avatar:   row.Owner.Avatar,
			}
		}
		feed.Items = append(feed.Items, *withOwner(video, owner))
	}

	return feed, nil
}

func withOwner(video model.Video, owner *model.OwnerSummary) *model.VideoWithOwner {
	return &model.VideoWithOwner{
		ID:                video.ID,
		Title:             video.Title,
		Description:       video.Description,
		VideoURL:          video.VideoURL,
		VideoPublicID:     video.VideoPublicID,
		ThumbnailURL:      video.ThumbnailURL,
		ThumbnailPublicID: video.ThumbnailPublicID,
		Duration:          video.Duration,
		Views:             video.Views,
		CreatedAt:         video.CreatedAt,
		UpdatedAt:         video.UpdatedAt,
		OwnerID:           video.OwnerID,
		Owner:             owner,
	}
}
