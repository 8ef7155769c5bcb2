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
)

type AdminHandler struct {
	admin  service.AdminIface
	logger *zap.Logger
}

func NewAdmin(a service.AdminIface, l *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  a,
		logger: l,
	}
}

// List handles GET /api/admin/urls, newest mappings first.
func (h *AdminHandler) List(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	mappings, err := h.admin.ListAll(ctx)
	if err != nil {
		h.logger.Error("list failed", zap.Error(err))
		writeServerError(res)
		return
	}

	writeJSON(res, http.StatusOK, models.Response{Success: true, Data: mappings})
}

// Delete handles DELETE /api/admin/urls/{id}.
func (h *AdminHandler) Delete(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id := chi.URLParam(req, "id")
	if id == "" {
		writeJSON(res, http.StatusBadRequest, models.Response{Success: false, Message: "ID is required"})
		return
	}

	ok, err := h.admin.DeleteByID(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrInvalidID) {
			writeJSON(res, http.StatusBadRequest, models.Response{Success: false, Message: "Invalid ID"})
			return
		}

		h.logger.Error("delete failed", zap.String("id", id), zap.Error(err))
		writeServerError(res)
		return
	}

	if !ok {
		writeJSON(res, http.StatusNotFound, models.Response{Success: false, Message: "URL not found"})
		return
	}

	writeJSON(res, http.StatusOK, models.Response{Success: true, Message: "URL deleted successfully"})
}
