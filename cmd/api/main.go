package main

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/pkg/logger"
	"Socialboard/internal/pkg/redis"
	"Socialboard/internal/pkg/security"
	"Socialboard/internal/pkg/upstream"
	"Socialboard/internal/wire"
	"context"
	"errors"
	"fmt"
	log "log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载配置
	if err := config.LoadConfig(); err != nil {
		log.Error("Fatal error: failed to load configuration", "err", err)
		panic(err)
	}
	cfg := config.Cfg

	// 初始化日志
	logger.InitLogger(cfg.Log)

	if cfg.Upstream.BaseURL == "" {
		log.Warn("Mock API URL not configured, every social-media route will fail")
	}
	if cfg.Auth.JWTSecret == "" {
		log.Warn("auth.jwt_secret is empty, every authenticated route will reject requests")
	}

	// Redis 连接（可选，用于 token 黑名单）
	var revoked security.RevocationStore
	if cfg.Redis.Addr != "" {
		if err := redis.InitRedis(cfg.Redis); err != nil {
			log.Error("Fatal error: failed to create redis connection", "err", err)
			panic(err)
		}
		defer func() { _ = redis.Close() }()
		revoked = security.NewRedisRevocationStore()
	}

	// 依赖注入
	app, err := wire.BuildApplication(cfg, upstream.NewClient(cfg.Upstream), revoked)
	if err != nil {
		log.Error("Fatal error: failed to create application", "err", err)
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// 定时任务
	if err = app.CronMgr.Start(); err != nil {
		log.Error("Fatal error: failed to start cron jobs", "err", err)
		panic(err)
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info("Cron Jobs stopping...")
		app.CronMgr.Stop()
		return nil
	})

	// HTTP 服务器
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	g.Go(func() error {
		log.Info("HTTP Server starting...", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// 优雅退出
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case <-ctx.Done():
		case sig := <-quit:
			log.Info("Received signal, shutting down...", "signal", sig)
			cancel()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP Server shutdown failed", "err", err)
		}
		return nil
	})

	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("App exited with error", "err", err)
	}
	log.Info("App exited successfully.")
}
