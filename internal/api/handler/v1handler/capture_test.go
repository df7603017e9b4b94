package v1handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"urlshot/internal/api/handler/v1handler"
	"urlshot/internal/browser"
	"urlshot/pkg/domain"
	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"
	"urlshot/pkg/storage"
	mockstorage "urlshot/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

type fakePipeline struct {
	capture *domain.Capture
	err     error
}

func (f *fakePipeline) Process(ctx context.Context, rawURL string) (*domain.Capture, error) {
	if f.err != nil {
		return nil, f.err
	}
	c := *f.capture
	c.OriginalURL = rawURL

	return &c, nil
}

type fakeStorage struct {
	captures map[uuid.UUID]domain.Capture
	err      error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{captures: map[uuid.UUID]domain.Capture{}}
}

func (f *fakeStorage) StoreCapture(ctx context.Context, capture domain.Capture) (*domain.Capture, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.captures[uuid.UUID(capture.ID)] = capture

	return &capture, nil
}

func (f *fakeStorage) CaptureByID(ctx context.Context, id domain.CaptureID) (*domain.Capture, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.captures[uuid.UUID(id)]
	if !ok {
		return nil, nil
	}

	return &c, nil
}

func (f *fakeStorage) RecentCaptures(ctx context.Context, cursor time.Time, limit uint) (storage.CaptureList, error) {
	if f.err != nil {
		return storage.CaptureList{}, f.err
	}
	out := make([]domain.Capture, 0, len(f.captures))
	for _, c := range f.captures {
		out = append(out, c)
	}

	return storage.CaptureList{Captures: out}, nil
}

func (f *fakeStorage) DeleteCapture(ctx context.Context, id domain.CaptureID) (*domain.Capture, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.captures[uuid.UUID(id)]
	if !ok {
		return nil, nil
	}
	delete(f.captures, uuid.UUID(id))

	return &c, nil
}

type fakePool struct {
	health browser.Health
}

func (f *fakePool) Health() browser.Health { return f.health }

func noSec(next http.Handler) http.Handler { return next }

func setupMux(deps v1handler.Deps) *http.ServeMux {
	mux := http.NewServeMux()
	v1handler.New(deps).Register(mux, noSec)

	return mux
}

func sampleCapture() *domain.Capture {
	return &domain.Capture{
		ID:            domain.CaptureID(uuid.New()),
		AnonymizedURL: "https://example.com/?email=anonymized_value",
		FinalURL:      "https://landing.example.com/",
		RedirectChain: domain.RedirectChain{
			Steps:    []string{"https://example.com/", "https://landing.example.com/"},
			FinalURL: "https://landing.example.com/",
			Reason:   domain.ReasonResolvedNonRedirect,
		},
		Identifiers: []domain.Identifier{},
		Status:      domain.CaptureStatusSuccess,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestCreateCapture(t *testing.T) {
	strg := newFakeStorage()
	mux := setupMux(v1handler.Deps{
		Pipeline: &fakePipeline{capture: sampleCapture()},
		Storage:  strg,
		Pool:     &fakePool{},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/captures",
		strings.NewReader(`{"url":"https://example.com/"}`))
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var capture domain.Capture
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &capture))
	require.Equal(t, "https://example.com/", capture.OriginalURL)
	require.Equal(t, domain.CaptureStatusSuccess, capture.Status)

	// persisted
	require.Len(t, strg.captures, 1)
}

func TestCreateCapture_BadBody(t *testing.T) {
	mux := setupMux(v1handler.Deps{
		Pipeline: &fakePipeline{capture: sampleCapture()},
		Storage:  newFakeStorage(),
		Pool:     &fakePool{},
	})

	for _, body := range []string{``, `{`, `{"url":""}`} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/captures", strings.NewReader(body))
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
	}
}

func TestCreateCapture_AdmissionErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{serrors.With(serrors.ErrQueueFull, "session pool queue is full"), http.StatusTooManyRequests},
		{serrors.With(serrors.ErrTimeout, "timed out waiting for a session"), http.StatusRequestTimeout},
		{serrors.With(serrors.ErrBadRequest, "URL must use http or https"), http.StatusBadRequest},
		{serrors.With(serrors.ErrUnavailable, "could not create browser session"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		mux := setupMux(v1handler.Deps{
			Pipeline: &fakePipeline{err: tt.err},
			Storage:  newFakeStorage(),
			Pool:     &fakePool{},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/captures",
			strings.NewReader(`{"url":"https://example.com/"}`))
		mux.ServeHTTP(rec, req)

		require.Equal(t, tt.want, rec.Code, "error: %v", tt.err)

		var resp struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Code)
		require.NotEmpty(t, resp.Message)
	}
}

func TestCreateCapture_StorageOutageIsBestEffort(t *testing.T) {
	strg := newFakeStorage()
	strg.err = serrors.With(serrors.ErrInternal, "db down")
	mux := setupMux(v1handler.Deps{
		Pipeline: &fakePipeline{capture: sampleCapture()},
		Storage:  strg,
		Pool:     &fakePool{},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/captures",
		strings.NewReader(`{"url":"https://example.com/"}`))
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestGetCapture(t *testing.T) {
	strg := newFakeStorage()
	c := sampleCapture()
	_, err := strg.StoreCapture(context.Background(), *c)
	require.NoError(t, err)

	mux := setupMux(v1handler.Deps{Storage: strg, Pool: &fakePool{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/captures/"+uuid.UUID(c.ID).String(), nil)
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.Capture
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, c.ID, got.ID)
}

func TestGetCapture_NotFoundAndBadID(t *testing.T) {
	mux := setupMux(v1handler.Deps{Storage: newFakeStorage(), Pool: &fakePool{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCaptures(t *testing.T) {
	strg := newFakeStorage()
	_, err := strg.StoreCapture(context.Background(), *sampleCapture())
	require.NoError(t, err)

	mux := setupMux(v1handler.Deps{Storage: strg, Pool: &fakePool{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures?limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var list v1handler.CaptureList
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list.Items, 1)

	// invalid limit and cursor are rejected
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures?limit=zero", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures?cursor=yesterday", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteCapture(t *testing.T) {
	strg := newFakeStorage()
	c := sampleCapture()
	_, err := strg.StoreCapture(context.Background(), *c)
	require.NoError(t, err)

	mux := setupMux(v1handler.Deps{Storage: strg, Pool: &fakePool{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/captures/"+uuid.UUID(c.ID).String(), nil))
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/captures/"+uuid.UUID(c.ID).String(), nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCaptures_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	st.EXPECT().RecentCaptures(gomock.Any(), gomock.Any(), uint(v1handler.DefaultLimit)).
		Return(storage.CaptureList{}, errors.New("connection refused"))

	mux := setupMux(v1handler.Deps{Storage: st, Pool: &fakePool{}})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/captures", nil))

	// backend failures must not leak details to clients
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "connection refused")
}

func TestHealth(t *testing.T) {
	tests := []struct {
		health     browser.Health
		wantStatus string
		wantCode   int
	}{
		{browser.Health{Leased: 1, Waiting: 0, Capacity: 4, QueueSize: 16}, "healthy", http.StatusOK},
		{browser.Health{Leased: 4, Waiting: 3, Capacity: 4, QueueSize: 16}, "degraded", http.StatusOK},
		{browser.Health{Leased: 4, Waiting: 16, Capacity: 4, QueueSize: 16}, "unhealthy", http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		mux := setupMux(v1handler.Deps{Storage: newFakeStorage(), Pool: &fakePool{health: tt.health}})

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))
		require.Equal(t, tt.wantCode, rec.Code)

		var resp v1handler.HealthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Equal(t, tt.wantStatus, resp.Status)
		require.Equal(t, tt.health, resp.Sessions)
	}
}
