package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/linksrv/shortener/internal/app/server"
	"github.com/linksrv/shortener/internal/app/service"
	"github.com/linksrv/shortener/internal/cache"
	"github.com/linksrv/shortener/internal/config"
	"github.com/linksrv/shortener/internal/logger"
	"github.com/linksrv/shortener/internal/repository"
	"github.com/linksrv/shortener/internal/storage"

	_ "net/http/pprof"
)

const codeLength = 8

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options := config.Parse()

	log := logger.New()
	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	zapLogger := log.Log
	defer func() {
		_ = zapLogger.Sync()
	}()

	zapLogger.Info("build info",
		zap.String("version", buildVersion),
		zap.String("date", buildDate),
		zap.String("commit", buildCommit),
	)

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s storage.Store

	switch {
	case options.DatabaseDSN != "":
		zapLogger.Info("using db storage")
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		defer db.Close()
		s = repository.CreateURLRepository(db, zapLogger)
		zapLogger.Info("Database connected and table ready.")

	case options.FilePath != "":
		zapLogger.Info("using file storage", zap.String("filePath", options.FilePath))
		fs, err := storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			panic(err)
		}
		defer fs.Close()
		s = fs

	default:
		zapLogger.Info("using in memory storage")
		ms, err := storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
		s = ms
	}

	var redirectCache *cache.Cache
	if options.RedisAddr != "" {
		c, err := cache.New(options.RedisAddr)
		if err != nil {
			zapLogger.Warn("redis unavailable, running without cache", zap.Error(err))
		} else {
			zapLogger.Info("redis connected", zap.String("addr", options.RedisAddr))
			redirectCache = c
			defer redirectCache.Close()
		}
	}

	gen := service.NewCodeGenerator(codeLength)
	shortener := service.NewShortener(s, gen, zapLogger, options.BaseURL)
	redirector := service.NewRedirector(s, redirectCache, zapLogger)
	admin := service.NewAdmin(s, redirectCache, zapLogger)

	r := server.Init(zapLogger, shortener, redirector, admin)

	srv := &http.Server{
		Addr:    options.Addr,
		Handler: r,
	}

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:  autocert.DirCache("cache-dir"),
			Prompt: autocert.AcceptTOS,
		}
		srv.Addr = ":443"
		srv.TLSConfig = manager.TLSConfig()
	}

	go func() {
		var err error
		if options.EnableHTTPS {
			zapLogger.Info("Server is running with TLS", zap.String("addr", srv.Addr))
			err = srv.ListenAndServeTLS("", "")
		} else {
			zapLogger.Info("Server is running", zap.String("addr", srv.Addr))
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server shutdown", zap.Error(err))
	}
}
