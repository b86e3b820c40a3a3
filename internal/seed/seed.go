package seed

import (
	"context"

	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin makes the configured admin exist on startup. Registration
// has no API surface, so this is how the credential store gets its
// first (and usually only) admin.
func EnsureAdmin(ctx context.Context, users repo.UserRepo, cfg *config.Config, log *zap.Logger) error {
	if !cfg.Auth.SeedAdmin || cfg.Auth.AdminUsername == "" {
		return nil
	}

	if _, err := users.FindByUsername(ctx, cfg.Auth.AdminUsername); err == nil {
		return nil
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Username:     cfg.Auth.AdminUsername,
		Email:        cfg.Auth.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
		Role:         "admin",
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Sugar().Infow("admin user seeded", "username", admin.Username)
	return nil
}
