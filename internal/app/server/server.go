// Package server assembles the router, middleware chain and CORS policy.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/app/handler"
	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/middleware"
)

// Init builds the HTTP handler: chi routes wrapped in logging, gzip and a
// permissive CORS policy for the browser UI.
func Init(logger *zap.Logger, shortener service.ShortenerIface, redirector service.RedirectorIface, admin service.AdminIface) http.Handler {
	post := handler.NewPost(shortener, logger)
	get := handler.NewGet(redirector, shortener, logger)
	adm := handler.NewAdmin(admin, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGzipRequest)
	r.Use(middleware.WithGzipResponse)

	r.Post("/api/shorten", post.Shorten)
	r.Get("/api/admin/urls", adm.List)
	r.Delete("/api/admin/urls/{id}", adm.Delete)
	r.Delete("/api/admin/urls", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "ID is required", http.StatusBadRequest)
	})

	r.Get("/ping", get.PingDB)
	r.Get("/{code}", get.Redirect)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Short code is required", http.StatusBadRequest)
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
	)

	return cors(r)
}
