package wire

import (
	"net/http"

	"gorm.io/gorm"

	"vidshare/internal/auth"
	"vidshare/internal/cache"
	"vidshare/internal/common"
	"vidshare/internal/config"
	"vidshare/internal/database"
	"vidshare/internal/logging"
	"vidshare/internal/router"
)

// Application is the fully wired API.
type Application struct {
	Config  *config.Config
	DB      *gorm.DB
	Handler http.Handler
}

func ProvideDatabaseConnection(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := database.NewConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := database.Close(db); err != nil {
			logging.Logger.Error().Err(err).Msg("closing database")
		}
	}
	return db, cleanup, nil
}

func ProvideJWTManager(cfg *config.Config) *common.JWTManager {
	return common.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func ProvideStatsCache(cfg *config.Config) (*cache.StatsCache, func()) {
	c := cache.NewStatsCache(cfg.Redis.URL)
	return c, func() {
		if err := c.Close(); err != nil {
			logging.Logger.Warn().Err(err).Msg("closing redis")
		}
	}
}

func ProvideAuthHandler(svc auth.Service, cfg *config.Config) *auth.Handler {
	return auth.NewHandler(svc, cfg.Server.Environment)
}

func ProvideHTTPHandler(deps router.Dependencies) http.Handler {
	return router.New(deps)
}
