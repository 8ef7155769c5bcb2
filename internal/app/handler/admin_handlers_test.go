package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/mocks"
	"github.com/linksrv/shortener/internal/storage"
)

func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminIface(ctrl)
	h := NewAdmin(mockAdmin, zap.NewNop())

	now := time.Now()
	mockAdmin.EXPECT().ListAll(gomock.Any()).Return([]storage.URLMapping{
		{ID: "id-2", Code: "def67890", CreatedAt: now},
		{ID: "id-1", Code: "abc12345", CreatedAt: now.Add(-time.Hour)},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/urls", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                 `json:"success"`
		Data    []storage.URLMapping `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "id-2", envelope.Data[0].ID)
}

func TestList_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminIface(ctrl)
	h := NewAdmin(mockAdmin, zap.NewNop())

	mockAdmin.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/urls", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdmin := mocks.NewMockAdminIface(ctrl)
	h := NewAdmin(mockAdmin, zap.NewNop())

	tests := []struct {
		name         string
		id           string
		mockReturn   bool
		mockErr      error
		expectCall   bool
		expectedCode int
	}{
		{
			name:         "Existing mapping",
			id:           "5f3b0bb7-3f70-4f6c-b3a6-a2f20a0f9d7e",
			mockReturn:   true,
			expectCall:   true,
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown id",
			id:           "5f3b0bb7-3f70-4f6c-b3a6-a2f20a0f9d7e",
			mockReturn:   false,
			expectCall:   true,
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Malformed id",
			id:           "garbage",
			mockErr:      service.ErrInvalidID,
			expectCall:   true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Missing id",
			id:           "",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Store failure",
			id:           "5f3b0bb7-3f70-4f6c-b3a6-a2f20a0f9d7e",
			mockErr:      errors.New("connection refused"),
			expectCall:   true,
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.expectCall {
				mockAdmin.EXPECT().DeleteByID(gomock.Any(), tt.id).Return(tt.mockReturn, tt.mockErr)
			}

			req := withIDParam(httptest.NewRequest(http.MethodDelete, "/api/admin/urls/"+tt.id, nil), tt.id)
			w := httptest.NewRecorder()

			h.Delete(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
		})
	}
}
