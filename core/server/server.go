package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crewhub/core/cache"
	"crewhub/core/config"
	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/core/metrics"
	"crewhub/core/middleware"
	"crewhub/core/queue"
	"crewhub/core/storage"
	"crewhub/modules/analytics"
	"crewhub/modules/attendance"
	"crewhub/modules/auth"
	"crewhub/modules/board"
	"crewhub/modules/finance"
	"crewhub/modules/member"
	"crewhub/modules/notification"
	"crewhub/modules/schedule"
	"crewhub/modules/widget"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// Run boots the full service: config, database (with migrations), redis,
// background queue, object storage, HTTP routes and the worker. It blocks
// until SIGINT/SIGTERM and then shuts down gracefully.
func Run() error {
	cfg := config.Load()

	dbConfig := database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	}

	if err := database.RunMigrations(database.MigrationURL(dbConfig)); err != nil {
		return err
	}

	db, err := database.InitDB(dbConfig)
	if err != nil {
		return err
	}

	redisCache, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return err
	}

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()

	objectStorage := storage.NewObjectStorage(cfg.S3)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestID())

	mw := middleware.NewMiddleware(redisCache, cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst)
	defer mw.Close()
	e.Use(mw.RateLimitMiddleware())

	if cfg.Server.EnableMetrics {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCollector(registry)
		e.Use(collector.Middleware())
		e.GET("/metrics", metrics.Handler(registry))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	workerSrv, mux := queue.NewServer(cfg.Redis, cfg.Server.WorkerConcurrency)

	groupSvc := member.Init(e, db, mw)
	scheduleSvc := schedule.Init(e, db, groupSvc, queueClient, mw)

	auth.Init(e, db, redisCache, mw)
	attendanceSvc := attendance.Init(e, db, scheduleSvc, groupSvc, mw)
	notifSvc := notification.Init(e, db, queueClient, mux, scheduleSvc, attendanceSvc, groupSvc, mw)
	board.Init(e, db, groupSvc, objectStorage, notifSvc, mw)
	finance.Init(e, db, groupSvc, mw)
	analytics.Init(e, db, groupSvc, scheduleSvc, redisCache, mw)
	widget.Init(e, redisCache, groupSvc, mw)

	if cfg.Server.EnableWorker {
		go func() {
			if err := workerSrv.Run(mux); err != nil {
				logger.Error("worker server stopped", err)
			}
		}()
	}

	go func() {
		logger.Info("server listening", "port", cfg.Server.Port)
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	if cfg.Server.EnableWorker {
		workerSrv.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(ctx)
}
