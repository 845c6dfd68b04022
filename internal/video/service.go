package video

//go:generate mockgen -source=service.go -destination=mock_service_test.go -package=video
//go:generate mockgen -source=repository.go -destination=mock_repository_test.go -package=video

import (
	"context"

	"vidshare/internal/common"
	"vidshare/internal/database"
	"vidshare/internal/metrics"
)

// VideoInput is the videoData payload of a create request. Pointers tell a
// missing field apart from an empty string.
type VideoInput struct {
	Title        *string `json:"title" validate:"required"`
	Description  *string `json:"description" validate:"required"`
	VideoURL     *string `json:"videoUrl" validate:"required"`
	ThumbnailURL *string `json:"thumbnailUrl" validate:"required,url"`
	Label        *string `json:"label" validate:"required"`
}

type Service interface {
	CreateVideo(ctx context.Context, ownerID string, in VideoInput) (*database.Video, error)
	ListVideos(ctx context.Context, page common.Page) ([]database.Video, error)
}

type videoService struct {
	repo    Repository
	metrics *metrics.Collectors
}

func NewService(repo Repository, m *metrics.Collectors) Service {
	return &videoService{repo: repo, metrics: m}
}

// CreateVideo stores a video owned by ownerID. in must already be validated.
func (s *videoService) CreateVideo(ctx context.Context, ownerID string, in VideoInput) (*database.Video, error) {
	video := &database.Video{
		Title:       deref(in.Title),
		Description: deref(in.Description),
		VideoURL:    deref(in.VideoURL),
		UserID:      ownerID,
		Metadata: &database.VideoMetadata{
			Label:        deref(in.Label),
			ThumbnailURL: deref(in.ThumbnailURL),
		},
	}

	if err := s.repo.CreateVideo(ctx, video); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.VideosCreated.Inc()
	}
	return video, nil
}

func (s *videoService) ListVideos(ctx context.Context, page common.Page) ([]database.Video, error) {
	return s.repo.ListVideos(ctx, page.Offset(), page.Size)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
