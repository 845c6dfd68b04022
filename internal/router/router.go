package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"vidshare/internal/auth"
	"vidshare/internal/common"
	"vidshare/internal/database"
	"vidshare/internal/interaction"
	"vidshare/internal/logging"
	"vidshare/internal/metrics"
	"vidshare/internal/video"
)

// Dependencies are the handlers and collaborators the routes are bound to.
type Dependencies struct {
	DB           *gorm.DB
	Verifier     common.TokenVerifier
	Metrics      *metrics.Collectors
	Auth         *auth.Handler
	Videos       *video.Handler
	Interactions *interaction.Handler
}

// New builds the HTTP routes. Everything except /auth, /health and /metrics
// requires a bearer token.
func New(deps Dependencies) *mux.Router {
	router := mux.NewRouter()

	router.Use(logging.Recoverer)
	router.Use(logging.RequestLogger)
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware)
		router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc("/auth", deps.Auth.DevToken).Methods(http.MethodGet)
	router.HandleFunc("/health", healthCheckHandler(deps.DB)).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(common.AuthMiddleware(deps.Verifier))

	api.HandleFunc("/videos", deps.Videos.CreateVideo).Methods(http.MethodPost)
	api.HandleFunc("/videos", deps.Videos.FetchAllVideos).Methods(http.MethodGet)

	api.HandleFunc("/interactions/video/{id}", deps.Interactions.CountInteractions).Methods(http.MethodGet)
	api.HandleFunc("/comments/video/{id}", deps.Interactions.FetchComments).Methods(http.MethodGet)
	api.HandleFunc("/like/video/{id}", deps.Interactions.PostLike).Methods(http.MethodPost)
	api.HandleFunc("/comment/video/{id}", deps.Interactions.PostComment).Methods(http.MethodPost)
	api.HandleFunc("/view/video/{id}", deps.Interactions.PostView).Methods(http.MethodPost)

	return router
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func healthCheckHandler(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			logging.Logger.Error().Err(err).Msg("health check: database unreachable")
			common.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unhealthy", Service: "vidshare"})
			return
		}
		common.WriteJSON(w, http.StatusOK, healthResponse{Status: "healthy", Service: "vidshare"})
	}
}
