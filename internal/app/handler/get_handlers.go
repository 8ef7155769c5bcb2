package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/models"
	"github.com/linksrv/shortener/internal/storage"
)

type GetHandler struct {
	redirector service.RedirectorIface
	shortener  service.ShortenerIface
	logger     *zap.Logger
}

func NewGet(r service.RedirectorIface, s service.ShortenerIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		redirector: r,
		shortener:  s,
		logger:     l,
	}
}

// Redirect handles GET /{code}: resolves the code, records the click and
// answers 302 with the original URL in Location.
func (h *GetHandler) Redirect(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	code := chi.URLParam(req, "code")

	original, err := h.redirector.Resolve(ctx, code)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(res, http.StatusNotFound, models.Response{Success: false, Message: "URL not found"})
			return
		}

		h.logger.Error("resolve failed", zap.String("code", code), zap.Error(err))
		writeServerError(res)
		return
	}

	http.Redirect(res, req, original, http.StatusFound)
}

// PingDB handles GET /ping, reporting storage backend health.
func (h *GetHandler) PingDB(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.shortener.Ping(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}
