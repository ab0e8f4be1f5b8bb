package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/devlupca-cloud/njob-creator-sub000/core/cache"
	"github.com/devlupca-cloud/njob-creator-sub000/core/config"
	"github.com/devlupca-cloud/njob-creator-sub000/core/constants"
	"github.com/devlupca-cloud/njob-creator-sub000/core/database"
	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"
	mw "github.com/devlupca-cloud/njob-creator-sub000/core/middleware"
	"github.com/devlupca-cloud/njob-creator-sub000/core/realtime"
	"github.com/devlupca-cloud/njob-creator-sub000/core/worker"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/auth"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/availability"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/event"
	"github.com/devlupca-cloud/njob-creator-sub000/modules/notification"
	notificationService "github.com/devlupca-cloud/njob-creator-sub000/modules/notification/service"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires the whole application together and blocks until shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	c, err := cache.NewCache(cfg.Redis)
	if err != nil {
		return fmt.Errorf("init cache: %w", err)
	}
	defer c.Close()

	hub := realtime.NewHub(c.Client())

	asynqClient := worker.NewClient(cfg.Redis)
	defer asynqClient.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestID())

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	v1 := e.Group("/api/v1")
	middleware := mw.NewMiddleware(c)

	auth.Init(v1, db, c, middleware)
	availability.Init(v1, db, c, hub, middleware)
	notifSvc := notification.Init(v1, db, asynqClient, middleware)
	_, poller := event.Init(v1, db, hub, notifSvc, middleware)

	asynqServer, mux := worker.NewServer(cfg)
	mux.HandleFunc(notificationService.TaskTypeDeliver, notifSvc.HandleDeliverTask)

	go func() {
		if err := asynqServer.Run(mux); err != nil {
			logger.Error("Server:Worker:Error:", err)
		}
	}()

	pollerCtx, cancelPoller := context.WithCancel(context.Background())
	poller.Start(pollerCtx)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		logger.Info("Server:Listening", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start:Error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Server:ShuttingDown")

	cancelPoller()
	poller.Stop()
	asynqServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	logger.Info("Server:Stopped")
	return nil
}
