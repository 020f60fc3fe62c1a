package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/rafikey/rafikey-admin/config"
	"github.com/rafikey/rafikey-admin/internal/container"
	"github.com/rafikey/rafikey-admin/internal/infrastructure/backend"
	"github.com/rafikey/rafikey-admin/internal/interface/middleware"
	"github.com/rafikey/rafikey-admin/internal/router"
	"github.com/rafikey/rafikey-admin/pkg/helpers"
	"github.com/rafikey/rafikey-admin/pkg/validation"
	"github.com/rafikey/rafikey-admin/pkg/views"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Redis (optional, upload progress)
	if cfg.RedisAddr != "" {
		rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer func() { _ = rdb.Close() }()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.WithError(err).Warn("redis unreachable, upload progress kept in memory")
		} else {
			container.SetRedis(rdb)
		}
	}

	// GCS (optional, document archive)
	if cfg.GCSBucket != "" {
		gcsClient, err := helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath)
		if err != nil {
			log.Fatalf("failed to init GCS client: %v", err)
		}
		defer func() { _ = gcsClient.Close() }()
		container.SetGCS(gcsClient)
	}

	// Provide singletons to container for registry auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetCoreClient(backend.NewClient(cfg.BackendAPIURL, cfg.BackendTimeout, logger))
	container.SetUploadClient(backend.NewClient(cfg.BackendAPIURL, cfg.UploadTimeout, logger))
	container.SetBotClient(backend.NewClient(cfg.BotAPIURL, cfg.BackendTimeout, logger))

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("failed to parse templates: %v", err)
	}

	// Gin engine and global middleware
	r := gin.New()
	r.HTMLRender = renderer
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RealIP())
	if cfg.HTTPLogEnabled {
		r.Use(middleware.AccessLog(logger))
	}
	r.StaticFS("/static", views.Static())

	// Registry: edge gate and role derivation run before every page
	reg := router.NewRegistry(r)
	reg.Use(middleware.EdgeGate(cfg.PublicPaths()), middleware.Actor())
	if err := router.InitModules(reg); err != nil {
		log.Fatalf("failed to init modules: %v", err)
	}
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
