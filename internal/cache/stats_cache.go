package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"vidshare/internal/common"
	"vidshare/internal/logging"
)

const (
	// StatsTTL bounds staleness if an invalidation is ever lost.
	StatsTTL = 2 * time.Minute
	// GenerationTTL must stay well above StatsTTL: an expired generation
	// restarts at 0 and must not find a live entry from an earlier 0.
	GenerationTTL = 24 * time.Hour
)

// StatsCache is a cache-aside layer for per-video interaction counts. A nil
// client turns every operation into a no-op miss.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStatsCache connects to redisURL. An empty URL, an invalid URL or a
// failed ping disables caching instead of failing startup.
func NewStatsCache(redisURL string) *StatsCache {
	if redisURL == "" {
		logging.Logger.Info().Msg("redis: no URL configured, stats caching disabled")
		return &StatsCache{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logging.Logger.Warn().Err(err).Msg("redis: invalid URL, stats caching disabled")
		return &StatsCache{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logging.Logger.Warn().Err(err).Msg("redis: connection failed, stats caching disabled")
		rdb.Close()
		return &StatsCache{}
	}

	logging.Logger.Info().Msg("redis: connected, stats caching enabled")
	return NewStatsCacheWithClient(rdb, StatsTTL)
}

func NewStatsCacheWithClient(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func (c *StatsCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

// Generation returns the write generation of a video's stats. Fills must read
// it before they query the store and pass it back to Set.
func (c *StatsCache) Generation(ctx context.Context, videoID string) (int64, error) {
	if !c.Enabled() {
		return 0, nil
	}
	gen, err := c.rdb.Get(ctx, generationKey(videoID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Get returns the stats cached for generation gen and whether they were found.
func (c *StatsCache) Get(ctx context.Context, videoID string, gen int64) (common.Stats, bool, error) {
	if !c.Enabled() {
		return common.Stats{}, false, nil
	}
	data, err := c.rdb.Get(ctx, statsKey(videoID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return common.Stats{}, false, nil
	}
	if err != nil {
		return common.Stats{}, false, err
	}

	var stats common.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return common.Stats{}, false, err
	}
	return stats, true, nil
}

// Set stores stats under generation gen. A fill that raced with a write lands
// under an old generation and is never read.
func (c *StatsCache) Set(ctx context.Context, videoID string, gen int64, stats common.Stats) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, statsKey(videoID, gen), b, c.ttl).Err()
}

// Invalidate bumps the generation of a video after a write.
func (c *StatsCache) Invalidate(ctx context.Context, videoID string) error {
	if !c.Enabled() {
		return nil
	}
	key := generationKey(videoID)
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, GenerationTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *StatsCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.rdb.Close()
}

func statsKey(videoID string, gen int64) string {
	return "vidshare:stats:" + videoID + ":" + strconv.FormatInt(gen, 10)
}

func generationKey(videoID string) string {
	return "vidshare:stats-gen:" + videoID
}
