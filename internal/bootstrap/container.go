package bootstrap

import (
	"context"

	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/infra/blob"
	"github.com/launchlabs/leo-backend/internal/infra/cache"
	"github.com/launchlabs/leo-backend/internal/infra/db"
	"github.com/launchlabs/leo-backend/internal/infra/logger"
	"github.com/launchlabs/leo-backend/internal/infra/queue"
	"github.com/launchlabs/leo-backend/internal/modules/handler"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			err = d.AutoMigrate(
				&model.User{},
				&model.Project{},
				&model.Pledge{},
				&model.ProjectUpdate{},
				&model.Post{},
			)
			if err != nil {
				return nil, err
			}
		}
		return d, nil
	})

	// Redis (nil when unconfigured; the rate limiter treats nil as off)
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// RabbitMQ connection (nil when unconfigured)
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// Event publisher (nil without a broker; services skip publishing)
	do.Provide(inj, func(i *do.Injector) (queue.EventPublisher, error) {
		conn := do.MustInvoke[*amqp.Connection](i)
		if conn == nil {
			return nil, nil
		}
		cfg := do.MustInvoke[*config.Config](i)
		return queue.NewPublisher(conn, cfg.RabbitMQ.Queue, do.MustInvoke[*zap.Logger](i))
	})

	// Blob store
	do.Provide(inj, func(i *do.Injector) (blob.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewStore(context.Background(), cfg)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PledgeRepo, error) {
		return repo.NewPledgeRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectUpdateRepo, error) {
		return repo.NewProjectUpdateRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.PostRepo, error) {
		return repo.NewPostRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(
			do.MustInvoke[repo.UserRepo](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PledgeService, error) {
		return service.NewPledgeService(
			do.MustInvoke[repo.PledgeRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[queue.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UpdateService, error) {
		return service.NewUpdateService(
			do.MustInvoke[repo.ProjectUpdateRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[queue.EventPublisher](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.PostService, error) {
		return service.NewPostService(do.MustInvoke[repo.PostRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.UploadService, error) {
		return service.NewUploadService(do.MustInvoke[blob.Store](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(
			do.MustInvoke[service.AuthService](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PledgeHandler, error) {
		return handler.NewPledgeHandler(do.MustInvoke[service.PledgeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.UpdateHandler, error) {
		return handler.NewUpdateHandler(do.MustInvoke[service.UpdateService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.PostHandler, error) {
		return handler.NewPostHandler(do.MustInvoke[service.PostService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.FileHandler, error) {
		return handler.NewFileHandler(do.MustInvoke[service.UploadService](i)), nil
	})

	return inj
}
