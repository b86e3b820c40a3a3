package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/repo"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues and verifies the signed session tokens carried in
// the access_token cookie. Verify conflates authentication with the
// single coarse admin check every protected endpoint requires, saving a
// second lookup.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, ttl time.Duration, err error)
	Verify(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
	log   *zap.Logger
}

func NewAuthService(users repo.UserRepo, cfg *config.Config, log *zap.Logger) AuthService {
	return &authService{users: users, cfg: cfg, log: log}
}

func (s *authService) signingMethod() jwt.SigningMethod {
	if m := jwt.GetSigningMethod(s.cfg.Auth.Algorithm); m != nil {
		if _, ok := m.(*jwt.SigningMethodHMAC); ok {
			return m
		}
	}
	return jwt.SigningMethodHS256
}

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Duration, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return "", 0, apperr.New(apperr.KindInvalidInput, "bad credentials")
		}
		return "", 0, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", 0, apperr.New(apperr.KindInvalidInput, "bad credentials")
	}

	ttl := time.Duration(s.cfg.Auth.TokenTTLMin) * time.Minute
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.Username,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
	}

	signed, err := jwt.NewWithClaims(s.signingMethod(), claims).SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", 0, apperr.Wrap(apperr.KindPersistence, "sign token", err)
	}

	s.log.Sugar().Infow("session issued", "username", user.Username, "ttl", ttl.String())
	return signed, ttl, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*model.User, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.New(apperr.KindTokenExpired, "token expired")
		}
		return nil, apperr.Wrap(apperr.KindInvalidToken, "invalid token", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperr.New(apperr.KindInvalidToken, "invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, apperr.New(apperr.KindInvalidToken, "token subject missing")
	}

	user, err := s.users.FindByUsername(ctx, sub)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.New(apperr.KindUnauthenticated, "unknown user")
		}
		return nil, err
	}
	if !user.IsAdmin {
		return nil, apperr.New(apperr.KindForbidden, "admin capability required")
	}

	return user, nil
}
