package main

//	@title			LEO Kickstarter API
//	@version		1.0
//	@description	Crowdfunding backend for low-Earth-orbit projects.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/bootstrap"
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/modules/handler"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/modules/service"
	"github.com/launchlabs/leo-backend/internal/router"
	"github.com/launchlabs/leo-backend/internal/seed"
	"github.com/launchlabs/leo-backend/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	rdb := do.MustInvoke[*redis.Client](inj)

	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()
	}

	// credential store is pre-seeded, never mutated through the API
	if err := seed.EnsureAdmin(context.Background(), do.MustInvoke[repo.UserRepo](inj), cfg, log); err != nil {
		log.Sugar().Fatalw("failed to seed admin user", "err", err)
	}

	gin.SetMode(cfg.App.Env)

	engine := router.NewRouter(router.RouterDeps{
		Config:         cfg,
		Log:            log,
		Redis:          rdb,
		AuthService:    do.MustInvoke[service.AuthService](inj),
		AuthHandler:    do.MustInvoke[*handler.AuthHandler](inj),
		ProjectHandler: do.MustInvoke[*handler.ProjectHandler](inj),
		PledgeHandler:  do.MustInvoke[*handler.PledgeHandler](inj),
		UpdateHandler:  do.MustInvoke[*handler.UpdateHandler](inj),
		PostHandler:    do.MustInvoke[*handler.PostHandler](inj),
		FileHandler:    do.MustInvoke[*handler.FileHandler](inj),
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
