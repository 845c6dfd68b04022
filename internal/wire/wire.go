//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"vidshare/internal/auth"
	"vidshare/internal/common"
	"vidshare/internal/config"
	"vidshare/internal/interaction"
	"vidshare/internal/metrics"
	"vidshare/internal/router"
	"vidshare/internal/user"
	"vidshare/internal/video"
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		ProvideDatabaseConnection,
		ProvideJWTManager,
		wire.Bind(new(common.TokenVerifier), new(*common.JWTManager)),
		wire.Bind(new(common.TokenIssuer), new(*common.JWTManager)),
		ProvideStatsCache,
		metrics.New,

		user.NewUserRepository,
		auth.NewService,
		ProvideAuthHandler,

		video.NewRepository,
		video.NewService,
		video.NewHandler,

		interaction.NewRepository,
		interaction.NewService,
		interaction.NewHandler,

		wire.Struct(new(router.Dependencies), "*"),
		ProvideHTTPHandler,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil, nil
}
