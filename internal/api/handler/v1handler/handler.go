// Package v1handler implements the v1 HTTP handlers: capture submission and
// retrieval plus service health. Handlers translate semantic errors into
// response codes so admission rejections stay distinguishable from failures.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"urlshot/internal/browser"
	"urlshot/pkg/domain"
	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"
	"urlshot/pkg/storage"

	"go.uber.org/zap"
)

// CaptureService runs the capture pipeline for one URL.
type CaptureService interface {
	Process(ctx context.Context, rawURL string) (*domain.Capture, error)
}

// HealthReporter exposes session pool usage for the health endpoint.
type HealthReporter interface {
	Health() browser.Health
}

// Deps are the collaborators the v1 handlers need.
type Deps struct {
	// Pipeline processes capture requests.
	Pipeline CaptureService
	// Storage persists and serves capture history.
	Storage storage.CaptureStorage
	// Pool reports session pool health.
	Pool HealthReporter
}

// Handler serves the v1 API routes.
type Handler struct {
	deps Deps
}

// New constructs a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Register attaches the v1 routes to mux. sec wraps the capture routes; pass
// the identity middleware to disable authentication.
func (h *Handler) Register(mux *http.ServeMux, sec func(http.Handler) http.Handler) {
	mux.Handle("POST /v1/captures", sec(http.HandlerFunc(h.CreateCapture)))
	mux.Handle("GET /v1/captures", sec(http.HandlerFunc(h.ListCaptures)))
	mux.Handle("GET /v1/captures/{id}", sec(http.HandlerFunc(h.GetCapture)))
	mux.Handle("DELETE /v1/captures/{id}", sec(http.HandlerFunc(h.DeleteCapture)))
	mux.HandleFunc("GET /v1/health", h.Health)
}

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// kindStatus maps semantic error kinds to HTTP statuses and safe messages.
// Wrapped causes never leak to clients.
var kindStatus = []struct {
	kind    serrors.Kind
	status  int
	message string
}{
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "invalid request"},
	{serrors.ErrQueueFull, http.StatusTooManyRequests, "capture queue is full, try again later"},
	{serrors.ErrTimeout, http.StatusRequestTimeout, "timed out waiting for a browser session"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service temporarily unavailable"},
	{serrors.ErrCaptureFailed, http.StatusBadGateway, "could not capture the page"},
}

// writeError maps err onto the wire. Unknown errors become a generic 500.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	for _, m := range kindStatus {
		if errors.Is(err, m.kind) {
			msg := m.message
			var sErr *serrors.Error
			if errors.As(err, &sErr) && sErr.Message() != "" {
				msg = sErr.Message()
			}
			writeJSON(ctx, w, m.status, errorResponse{Code: m.kind.Error(), Message: msg})

			return
		}
	}

	logger.Error(ctx, "unexpected handler error", zap.Error(err))
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{
		Code:    serrors.ErrInternal.Error(),
		Message: "internal error",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}
