package v1handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"urlshot/pkg/domain"
	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultLimit is the page size for capture listings when none is requested.
const DefaultLimit = 20

// CreateCaptureRequest is the body of POST /v1/captures.
type CreateCaptureRequest struct {
	URL string `json:"url"`
}

// CaptureList is the body of GET /v1/captures.
type CaptureList struct {
	Items      []domain.Capture `json:"items"`
	NextCursor *time.Time       `json:"nextCursor,omitempty"`
}

// CreateCapture runs the capture pipeline for the submitted URL and persists
// the result.
func (h *Handler) CreateCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body"))

		return
	}
	if req.URL == "" {
		writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "url is required"))

		return
	}

	capture, err := h.deps.Pipeline.Process(ctx, req.URL)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	// History is best effort: a storage outage must not fail a capture the
	// client already paid for.
	if stored, err := h.deps.Storage.StoreCapture(ctx, *capture); err != nil {
		logger.Error(ctx, "could not persist capture", zap.Error(err))
	} else {
		capture = stored
	}

	writeJSON(ctx, w, http.StatusCreated, capture)
}

// GetCapture returns a stored capture by ID.
func (h *Handler) GetCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid capture id"))

		return
	}

	capture, err := h.deps.Storage.CaptureByID(ctx, domain.CaptureID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if capture == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "capture not found"))

		return
	}

	writeJSON(ctx, w, http.StatusOK, capture)
}

// ListCaptures returns a page of recent captures, newest first.
func (h *Handler) ListCaptures(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cursor time.Time
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor"))

			return
		}
		cursor = parsed
	}
	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			writeError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	page, err := h.deps.Storage.RecentCaptures(ctx, cursor, limit)
	if err != nil {
		writeError(ctx, w, err)

		return
	}

	items := page.Captures
	if items == nil {
		items = make([]domain.Capture, 0)
	}
	writeJSON(ctx, w, http.StatusOK, CaptureList{
		Items:      items,
		NextCursor: page.NextCursor,
	})
}

// DeleteCapture soft-deletes a stored capture by ID.
func (h *Handler) DeleteCapture(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(ctx, w, serrors.Wrap(serrors.ErrBadRequest, err, "invalid capture id"))

		return
	}

	deleted, err := h.deps.Storage.DeleteCapture(ctx, domain.CaptureID(id))
	if err != nil {
		writeError(ctx, w, err)

		return
	}
	if deleted == nil {
		writeError(ctx, w, serrors.With(serrors.ErrNotFound, "capture not found"))

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
