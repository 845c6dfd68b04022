package interaction

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"vidshare/internal/common"
	"vidshare/internal/database"
)

type Repository interface {
	VideoExists(ctx context.Context, videoID string) (bool, error)
	// CountByType groups the interactions of a video by type.
	CountByType(ctx context.Context, videoID string) (common.Stats, error)
	// ListComments returns a window of comments, oldest first, with the author
	// projection preloaded.
	ListComments(ctx context.Context, videoID string, offset, limit int) ([]database.Interaction, error)
	HasLiked(ctx context.Context, userID, videoID string) (bool, error)
	CreateInteraction(ctx context.Context, in *database.Interaction) error
	GetInteractionByID(ctx context.Context, id string) (*database.Interaction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &interactionRepository{db: db}
}

func selectUserProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "avatar_url")
}

func (r *interactionRepository) VideoExists(ctx context.Context, videoID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&database.Video{}).
		Where("id = ?", videoID).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("check video exists: %w", err)
	}
	return n > 0, nil
}

type typeCount struct {
	Type  common.InteractionType
	Count int64
}

func (r *interactionRepository) CountByType(ctx context.Context, videoID string) (common.Stats, error) {
	var rows []typeCount
	err := r.db.WithContext(ctx).
		Model(&database.Interaction{}).
		Select("type, count(*) as count").
		Where("video_id = ?", videoID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return common.Stats{}, fmt.Errorf("count interactions: %w", err)
	}

	var stats common.Stats
	for _, row := range rows {
		stats.Add(row.Type, row.Count)
	}
	return stats, nil
}

func (r *interactionRepository) ListComments(ctx context.Context, videoID string, offset, limit int) ([]database.Interaction, error) {
	comments := make([]database.Interaction, 0, limit)
	err := r.db.WithContext(ctx).
		Preload("User", selectUserProjection).
		Where("video_id = ? AND type = ?", videoID, common.InteractionComment).
		Order("created_at ASC").
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (r *interactionRepository) HasLiked(ctx context.Context, userID, videoID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&database.Interaction{}).
		Where("like_key = ?", database.LikeKey(userID, videoID)).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("find like: %w", err)
	}
	return n > 0, nil
}

// CreateInteraction inserts in. A second like for the same pair fails with an
// error wrapping gorm.ErrDuplicatedKey.
func (r *interactionRepository) CreateInteraction(ctx context.Context, in *database.Interaction) error {
	if err := r.db.WithContext(ctx).Omit("User", "Video").Create(in).Error; err != nil {
		return fmt.Errorf("create %s interaction: %w", in.Type, err)
	}
	return nil
}

func (r *interactionRepository) GetInteractionByID(ctx context.Context, id string) (*database.Interaction, error) {
	var in database.Interaction
	err := r.db.WithContext(ctx).
		Preload("User", selectUserProjection).
		Where("id = ?", id).
		First(&in).Error
	if err != nil {
		return nil, fmt.Errorf("get interaction %s: %w", id, err)
	}
	return &in, nil
}
