package auth

import (
	"errors"
	"net/http"

	"vidshare/internal/common"
	"vidshare/internal/logging"
)

const msgSecretMissing = "Internal Server Error!"

type Handler struct {
	svc        Service
	production bool
}

// NewHandler builds the dev token endpoint. In production every issued token
// is logged as a warning.
func NewHandler(svc Service, environment string) *Handler {
	logging.Logger.Warn().Str("env", environment).Msg("GET /auth issues development tokens without credentials")
	return &Handler{svc: svc, production: environment == "production"}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// DevToken handles GET /auth. It is a stand-in for a real login and issues a
// token for the fixed development profile to anyone who asks.
func (h *Handler) DevToken(w http.ResponseWriter, r *http.Request) {
	if h.production {
		logging.Logger.Warn().Str("remote", r.RemoteAddr).Msg("development token issued in production environment")
	}

	token, err := h.svc.IssueDevToken(r.Context())
	if errors.Is(err, common.ErrMissingSecret) {
		logging.Logger.Error().Err(err).Msg("cannot issue token")
		common.WriteMessage(w, http.StatusInternalServerError, msgSecretMissing)
		return
	}
	if err != nil {
		common.WriteInternalError(w, r, "devToken", err)
		return
	}

	common.WriteJSON(w, http.StatusOK, tokenResponse{Token: token})
}
