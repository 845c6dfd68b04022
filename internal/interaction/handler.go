package interaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"vidshare/internal/common"
	"vidshare/internal/database"
)

const (
	msgInvalidVideoID = "Invalid or missing videoId"
	msgMissingContent = "content not present in request body"
	msgVideoNotFound  = "video not found"
	msgAlreadyLiked   = "user has already liked the video"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type statsResponse struct {
	Stats common.Stats `json:"stats"`
}

// interactionView is a like or view as returned to clients.
type interactionView struct {
	ID        string                 `json:"id"`
	Type      common.InteractionType `json:"type"`
	UserID    string                 `json:"userId"`
	VideoID   string                 `json:"videoId"`
	CreatedAt time.Time              `json:"createdAt"`
}

type commentView struct {
	ID        string         `json:"id"`
	Content   string         `json:"content"`
	CreatedAt time.Time      `json:"createdAt"`
	User      *database.User `json:"user"`
}

func toInteractionView(in *database.Interaction) interactionView {
	return interactionView{
		ID:        in.ID,
		Type:      in.Type,
		UserID:    in.UserID,
		VideoID:   in.VideoID,
		CreatedAt: in.CreatedAt,
	}
}

func toCommentView(in *database.Interaction) commentView {
	v := commentView{ID: in.ID, CreatedAt: in.CreatedAt, User: in.User}
	if in.Content != nil {
		v.Content = *in.Content
	}
	return v
}

type commentRequest struct {
	Content json.RawMessage `json:"content"`
}

// videoID reads the {id} path variable, writing a 400 when it is blank.
func videoID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := mux.Vars(r)["id"]
	if strings.TrimSpace(id) == "" {
		common.WriteMessage(w, http.StatusBadRequest, msgInvalidVideoID)
		return "", false
	}
	return id, true
}

// CountInteractions handles GET /interactions/video/{id}.
func (h *Handler) CountInteractions(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.RequireIdentity(w, r); !ok {
		return
	}
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	stats, err := h.svc.CountInteractions(r.Context(), id)
	if err != nil {
		common.WriteInternalError(w, r, "countInteractions", err)
		return
	}
	common.WriteJSON(w, http.StatusOK, statsResponse{Stats: stats})
}

// FetchComments handles GET /comments/video/{id}.
func (h *Handler) FetchComments(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.RequireIdentity(w, r); !ok {
		return
	}
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	page := common.PageFromQuery(r.URL.Query())
	comments, err := h.svc.FetchComments(r.Context(), id, page)
	if err != nil {
		common.WriteInternalError(w, r, "fetchComments", err)
		return
	}

	out := make([]commentView, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentView(&comments[i]))
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"comments": out})
}

// PostLike handles POST /like/video/{id}. Liking twice is not an error.
func (h *Handler) PostLike(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	like, err := h.svc.PostLike(r.Context(), caller.ID, id)
	switch {
	case errors.Is(err, ErrAlreadyLiked):
		common.WriteMessage(w, http.StatusOK, msgAlreadyLiked)
	case errors.Is(err, ErrVideoNotFound):
		common.WriteMessage(w, http.StatusNotFound, msgVideoNotFound)
	case err != nil:
		common.WriteInternalError(w, r, "postLike", err)
	default:
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"like": toInteractionView(like)})
	}
}

// PostComment handles POST /comment/video/{id}.
func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	var req commentRequest
	var content string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		json.Unmarshal(req.Content, &content) != nil ||
		common.IsBlank(content) {
		common.WriteMessage(w, http.StatusBadRequest, msgMissingContent)
		return
	}

	comment, err := h.svc.PostComment(r.Context(), caller.ID, id, content)
	switch {
	case errors.Is(err, ErrVideoNotFound):
		common.WriteMessage(w, http.StatusNotFound, msgVideoNotFound)
	case err != nil:
		common.WriteInternalError(w, r, "postComment", err)
	default:
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"comment": toCommentView(comment)})
	}
}

// PostView handles POST /view/video/{id}.
func (h *Handler) PostView(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := videoID(w, r)
	if !ok {
		return
	}

	view, err := h.svc.PostView(r.Context(), caller.ID, id)
	switch {
	case errors.Is(err, ErrVideoNotFound):
		common.WriteMessage(w, http.StatusNotFound, msgVideoNotFound)
	case err != nil:
		common.WriteInternalError(w, r, "postView", err)
	default:
		common.WriteJSON(w, http.StatusOK, map[string]interface{}{"view": toInteractionView(view)})
	}
}
