package video

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vidshare/internal/database"
)

type Repository interface {
	// CreateVideo inserts the video and its metadata in one transaction.
	CreateVideo(ctx context.Context, video *database.Video) error
	// ListVideos returns a window of videos, newest first, with metadata and
	// the owner projection preloaded.
	ListVideos(ctx context.Context, offset, limit int) ([]database.Video, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateVideo(ctx context.Context, video *database.Video) error {
	// gorm wraps the insert of the video and its has-one association in a
	// single transaction
	if err := r.db.WithContext(ctx).Omit("User").Create(video).Error; err != nil {
		return fmt.Errorf("create video: %w", err)
	}
	return nil
}

func (r *videoRepository) ListVideos(ctx context.Context, offset, limit int) ([]database.Video, error) {
	videos := make([]database.Video, 0, limit)
	err := r.db.WithContext(ctx).
		Preload("Metadata").
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "username", "avatar_url")
		}).
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&videos).Error
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}
