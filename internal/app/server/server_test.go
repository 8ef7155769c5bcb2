package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/app/server"
	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/storage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mem, err := storage.CreateMemoryStorage()
	require.NoError(t, err)

	logger := zap.NewNop()
	gen := service.NewCodeGenerator(8)
	shortener := service.NewShortener(mem, gen, logger, "http://localhost:8080")
	redirector := service.NewRedirector(mem, nil, logger)
	admin := service.NewAdmin(mem, nil, logger)

	ts := httptest.NewServer(server.Init(logger, shortener, redirector, admin))
	t.Cleanup(ts.Close)
	return ts
}

// noRedirectClient stops at the first 3xx so Location can be asserted.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func TestShortenRedirectRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	// create
	resp, err := client.Post(ts.URL+"/api/shorten", "application/json",
		bytes.NewBufferString(`{"originalUrl":"https://example.com/page"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool               `json:"success"`
		Data    storage.URLMapping `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NotEmpty(t, envelope.Data.Code)

	// follow the short link
	redirect, err := client.Get(ts.URL + "/" + envelope.Data.Code)
	require.NoError(t, err)
	defer redirect.Body.Close()

	assert.Equal(t, http.StatusFound, redirect.StatusCode)
	assert.Equal(t, "https://example.com/page", redirect.Header.Get("Location"))
}

func TestAdminListAndDelete(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	resp, err := client.Post(ts.URL+"/api/shorten", "application/json",
		bytes.NewBufferString(`{"originalUrl":"https://example.com"}`))
	require.NoError(t, err)
	var created struct {
		Data storage.URLMapping `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()

	// list
	list, err := client.Get(ts.URL + "/api/admin/urls")
	require.NoError(t, err)
	defer list.Body.Close()
	require.Equal(t, http.StatusOK, list.StatusCode)

	var listed struct {
		Success bool                 `json:"success"`
		Data    []storage.URLMapping `json:"data"`
	}
	require.NoError(t, json.NewDecoder(list.Body).Decode(&listed))
	require.Len(t, listed.Data, 1)

	// delete
	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/api/admin/urls/"+created.Data.ID, nil)
	require.NoError(t, err)
	del, err := client.Do(req)
	require.NoError(t, err)
	defer del.Body.Close()
	assert.Equal(t, http.StatusOK, del.StatusCode)

	// the code is gone
	gone, err := client.Get(ts.URL + "/" + created.Data.Code)
	require.NoError(t, err)
	defer gone.Body.Close()
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
}

func TestRouteEdges(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	tests := []struct {
		name     string
		method   string
		path     string
		expected int
	}{
		{"root without code", http.MethodGet, "/", http.StatusBadRequest},
		{"delete without id", http.MethodDelete, "/api/admin/urls", http.StatusBadRequest},
		{"unknown nested route", http.MethodGet, "/api/unknown/route", http.StatusNotFound},
		{"wrong method on shorten", http.MethodGet, "/api/shorten", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expected, resp.StatusCode)
		})
	}
}

func TestShortenIdempotentOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	client := noRedirectClient()

	shorten := func() storage.URLMapping {
		resp, err := client.Post(ts.URL+"/api/shorten", "application/json",
			bytes.NewBufferString(`{"originalUrl":"https://example.com"}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var envelope struct {
			Data storage.URLMapping `json:"data"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
		return envelope.Data
	}

	first := shorten()
	second := shorten()

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.ID, second.ID)
}
