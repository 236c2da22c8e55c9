// Package main runs the voice recorder upload service with graceful shutdown.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/voicedrop/backend/config"
	"github.com/voicedrop/backend/internal/middleware"
	"github.com/voicedrop/backend/internal/recordings"
	"github.com/voicedrop/backend/internal/session"
	"github.com/voicedrop/backend/pkg/redis"
	"github.com/voicedrop/backend/pkg/response"
	"github.com/voicedrop/backend/pkg/storage"
	"github.com/voicedrop/backend/web"
)

func main() {
	logger := newLogger()
	defer logger.Sync()

	// Missing bucket configuration is fatal before any route is served.
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx := context.Background()
	s3Client, err := storage.NewS3(ctx, storage.S3Config{
		Region:          cfg.AWS.Region,
		AccessKeyID:     cfg.AWS.AccessKeyID,
		SecretAccessKey: cfg.AWS.SecretAccessKey,
	}, logger)
	if err != nil {
		logger.Fatal("s3 client", zap.Error(err))
	}

	sessionTTL := time.Duration(cfg.Uploads.SessionTTLMinutes) * time.Minute
	var sessions session.Store = session.NewMemoryStore(sessionTTL)
	if cfg.Redis.Addr != "" {
		rdb, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			logger.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb.Client, sessionTTL)
	}

	presignExpiry := time.Duration(cfg.AWS.PresignExpireMinutes) * time.Minute
	workflow := recordings.NewWorkflow(s3Client, cfg.AWS.RecordingsBucket, cfg.Uploads.KeyPrefix, presignExpiry, logger)
	handler := recordings.NewHandler(workflow, sessions, cfg.Uploads.MaxSizeBytes, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))
	router.Use(middleware.Logger(logger))

	router.GET("/healthz", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	handler.Register(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Info("server listening",
			zap.String("port", cfg.Server.Port),
			zap.String("bucket", cfg.AWS.RecordingsBucket),
			zap.String("key_prefix", cfg.Uploads.KeyPrefix),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}
