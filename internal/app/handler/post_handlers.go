package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/models"
)

type PostHandler struct {
	shortener service.ShortenerIface
	logger    *zap.Logger
}

func NewPost(s service.ShortenerIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		shortener: s,
		logger:    l,
	}
}

// Shorten handles POST /api/shorten. Resubmitting a known URL returns the
// existing mapping.
func (h *PostHandler) Shorten(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	var request models.ShortenRequest

	err := decodeJSONBody(res, req, &request)
	if err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeJSON(res, mr.status, models.Response{Success: false, Message: mr.msg})
			return
		}
		h.logger.Error("cannot decode shorten request", zap.Error(err))
		writeServerError(res)
		return
	}

	m, err := h.shortener.Shorten(ctx, request.OriginalURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			writeJSON(res, http.StatusUnauthorized, models.Response{Success: false, Message: "Invalid URL"})
			return
		}

		h.logger.Error("shorten failed", zap.String("originalUrl", request.OriginalURL), zap.Error(err))
		writeServerError(res)
		return
	}

	writeJSON(res, http.StatusOK, models.Response{Success: true, Data: m})
}
