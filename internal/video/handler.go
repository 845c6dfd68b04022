package video

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vidshare/internal/common"
	"vidshare/internal/database"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type createVideoRequest struct {
	VideoData json.RawMessage `json:"videoData"`
}

type createVideoResponse struct {
	Video *database.Video `json:"video"`
}

type listVideosResponse struct {
	Videos []database.Video `json:"videos"`
}

// CreateVideo handles POST /videos.
func (h *Handler) CreateVideo(w http.ResponseWriter, r *http.Request) {
	caller, ok := common.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req createVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if common.IsFalsyJSON(req.VideoData) {
		common.WriteMessage(w, http.StatusBadRequest, "videoData missing")
		return
	}

	in, errs := decodeVideoInput(req.VideoData)
	if len(errs) > 0 {
		writeInvalidVideoData(w, errs)
		return
	}

	video, err := h.svc.CreateVideo(r.Context(), caller.ID, in)
	if err != nil {
		common.WriteInternalError(w, r, "createVideo", err)
		return
	}

	common.WriteJSON(w, http.StatusOK, createVideoResponse{Video: video})
}

// FetchAllVideos handles GET /videos.
func (h *Handler) FetchAllVideos(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.RequireIdentity(w, r); !ok {
		return
	}

	page := common.PageFromQuery(r.URL.Query())
	videos, err := h.svc.ListVideos(r.Context(), page)
	if err != nil {
		common.WriteInternalError(w, r, "fetchAllVideos", err)
		return
	}
	if videos == nil {
		videos = []database.Video{}
	}

	common.WriteJSON(w, http.StatusOK, listVideosResponse{Videos: videos})
}

// decodeVideoInput decodes each field on its own so that a wrongly typed
// field is reported together with every schema violation of the others.
func decodeVideoInput(raw json.RawMessage) (VideoInput, []common.FieldError) {
	var in VideoInput

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		errs := common.DecodeErrors(err)
		for i := range errs {
			if errs[i].Field == "" {
				errs[i].Field = "videoData"
			}
		}
		return in, errs
	}

	targets := []struct {
		name string
		dst  **string
	}{
		{"title", &in.Title},
		{"description", &in.Description},
		{"videoUrl", &in.VideoURL},
		{"thumbnailUrl", &in.ThumbnailURL},
		{"label", &in.Label},
	}

	var errs []common.FieldError
	mistyped := make(map[string]bool)
	for _, target := range targets {
		value, ok := fields[target.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, target.dst); err != nil {
			mistyped[target.name] = true
			errs = append(errs, common.FieldError{
				Field:   target.name,
				Rule:    "type",
				Message: target.name + " must be a string",
			})
		}
	}

	for _, fe := range common.ValidateStruct(in) {
		if !mistyped[fe.Field] {
			errs = append(errs, fe)
		}
	}
	return in, errs
}

func writeInvalidVideoData(w http.ResponseWriter, errs []common.FieldError) {
	common.WriteJSON(w, http.StatusBadRequest, common.MessageResponse{
		Message: "Invalid video data",
		Errors:  errs,
	})
}
