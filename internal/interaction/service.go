package interaction

//go:generate mockgen -source=service.go -destination=mock_service_test.go -package=interaction
//go:generate mockgen -source=repository.go -destination=mock_repository_test.go -package=interaction

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"vidshare/internal/cache"
	"vidshare/internal/common"
	"vidshare/internal/database"
	"vidshare/internal/logging"
	"vidshare/internal/metrics"
)

var (
	ErrVideoNotFound = errors.New("video not found")
	ErrAlreadyLiked  = errors.New("user has already liked the video")
)

type Service interface {
	CountInteractions(ctx context.Context, videoID string) (common.Stats, error)
	FetchComments(ctx context.Context, videoID string, page common.Page) ([]database.Interaction, error)
	PostLike(ctx context.Context, userID, videoID string) (*database.Interaction, error)
	PostComment(ctx context.Context, userID, videoID, content string) (*database.Interaction, error)
	PostView(ctx context.Context, userID, videoID string) (*database.Interaction, error)
}

type interactionService struct {
	repo    Repository
	cache   *cache.StatsCache
	metrics *metrics.Collectors
}

// NewService builds the interaction service. stats and m may be nil.
func NewService(repo Repository, stats *cache.StatsCache, m *metrics.Collectors) Service {
	return &interactionService{repo: repo, cache: stats, metrics: m}
}

// CountInteractions does not check that the video exists; an unknown id
// yields zero counts.
func (s *interactionService) CountInteractions(ctx context.Context, videoID string) (common.Stats, error) {
	if !s.cache.Enabled() {
		return s.repo.CountByType(ctx, videoID)
	}

	// read before the store: a write landing during the fill bumps it
	gen, err := s.cache.Generation(ctx, videoID)
	if err != nil {
		logging.Logger.Warn().Err(err).Str("video_id", videoID).Msg("stats cache unavailable")
		return s.repo.CountByType(ctx, videoID)
	}

	cached, ok, err := s.cache.Get(ctx, videoID, gen)
	if err != nil {
		logging.Logger.Warn().Err(err).Str("video_id", videoID).Msg("stats cache read failed")
	}
	if ok {
		s.countCache(true)
		return cached, nil
	}
	s.countCache(false)

	stats, err := s.repo.CountByType(ctx, videoID)
	if err != nil {
		return common.Stats{}, err
	}

	if err := s.cache.Set(ctx, videoID, gen, stats); err != nil {
		logging.Logger.Warn().Err(err).Str("video_id", videoID).Msg("stats cache write failed")
	}
	return stats, nil
}

func (s *interactionService) FetchComments(ctx context.Context, videoID string, page common.Page) ([]database.Interaction, error) {
	return s.repo.ListComments(ctx, videoID, page.Offset(), page.Size)
}

func (s *interactionService) PostLike(ctx context.Context, userID, videoID string) (*database.Interaction, error) {
	if err := s.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}

	liked, err := s.repo.HasLiked(ctx, userID, videoID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, ErrAlreadyLiked
	}

	like := &database.Interaction{
		Type:    common.InteractionLike,
		UserID:  userID,
		VideoID: videoID,
	}
	if err := s.repo.CreateInteraction(ctx, like); err != nil {
		// lost a race with a concurrent like from the same user
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyLiked
		}
		return nil, err
	}

	s.recorded(ctx, like)
	return like, nil
}

// PostComment stores content as given; callers reject blank content.
func (s *interactionService) PostComment(ctx context.Context, userID, videoID, content string) (*database.Interaction, error) {
	if err := s.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}

	comment := &database.Interaction{
		Type:    common.InteractionComment,
		Content: &content,
		UserID:  userID,
		VideoID: videoID,
	}
	if err := s.repo.CreateInteraction(ctx, comment); err != nil {
		return nil, err
	}
	s.recorded(ctx, comment)

	withUser, err := s.repo.GetInteractionByID(ctx, comment.ID)
	if err != nil {
		return nil, err
	}
	return withUser, nil
}

func (s *interactionService) PostView(ctx context.Context, userID, videoID string) (*database.Interaction, error) {
	if err := s.ensureVideo(ctx, videoID); err != nil {
		return nil, err
	}

	view := &database.Interaction{
		Type:    common.InteractionView,
		UserID:  userID,
		VideoID: videoID,
	}
	if err := s.repo.CreateInteraction(ctx, view); err != nil {
		return nil, err
	}

	s.recorded(ctx, view)
	return view, nil
}

func (s *interactionService) ensureVideo(ctx context.Context, videoID string) error {
	ok, err := s.repo.VideoExists(ctx, videoID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVideoNotFound
	}
	return nil
}

// recorded runs the bookkeeping that follows every successful write.
func (s *interactionService) recorded(ctx context.Context, in *database.Interaction) {
	if err := s.cache.Invalidate(ctx, in.VideoID); err != nil {
		logging.Logger.Warn().Err(err).Str("video_id", in.VideoID).Msg("stats cache invalidation failed")
	}
	if s.metrics != nil {
		s.metrics.InteractionsCreated.WithLabelValues(in.Type.String()).Inc()
	}
}

func (s *interactionService) countCache(hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHits.Inc()
	} else {
		s.metrics.CacheMisses.Inc()
	}
}
