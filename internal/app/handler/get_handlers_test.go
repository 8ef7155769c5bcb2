package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/mocks"
	"github.com/linksrv/shortener/internal/storage"
)

func withCodeParam(req *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("code", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestRedirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedirector := mocks.NewMockRedirectorIface(ctrl)
	mockShortener := mocks.NewMockShortenerIface(ctrl)
	h := NewGet(mockRedirector, mockShortener, zap.NewNop())

	tests := []struct {
		name         string
		code         string
		mockReturn   string
		mockErr      error
		expectedCode int
		expectedLoc  string
	}{
		{
			name:         "Known code",
			code:         "abc12345",
			mockReturn:   "https://example.com/page",
			expectedCode: http.StatusFound,
			expectedLoc:  "https://example.com/page",
		},
		{
			name:         "Unknown code",
			code:         "missing1",
			mockErr:      storage.ErrNotFound,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Store failure",
			code:         "abc12345",
			mockErr:      errors.New("connection refused"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRedirector.EXPECT().Resolve(gomock.Any(), tt.code).Return(tt.mockReturn, tt.mockErr)

			req := withCodeParam(httptest.NewRequest(http.MethodGet, "/"+tt.code, nil), tt.code)
			w := httptest.NewRecorder()

			h.Redirect(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			assert.Equal(t, tt.expectedLoc, resp.Header.Get("Location"))
		})
	}
}

func TestPingDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRedirector := mocks.NewMockRedirectorIface(ctrl)
	mockShortener := mocks.NewMockShortenerIface(ctrl)
	h := NewGet(mockRedirector, mockShortener, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		mockShortener.EXPECT().Ping(gomock.Any()).Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()

		h.PingDB(w, req)

		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	})

	t.Run("Failure", func(t *testing.T) {
		mockShortener.EXPECT().Ping(gomock.Any()).Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()

		h.PingDB(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
