package blob

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"

	"github.com/launchlabs/leo-backend/internal/config"
)

// Store persists uploaded files under a caller-chosen name and returns
// the URL clients fetch them from.
type Store interface {
	Save(ctx context.Context, name string, fh *multipart.FileHeader) (string, error)
}

// NewStore picks the backend from storage.driver.
func NewStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage.Driver {
	case "", "local":
		return NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.BasePath)
	case "s3":
		return NewS3Store(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// LocalStore writes files into a directory served as static content.
type LocalStore struct {
	dir      string
	basePath string
}

func NewLocalStore(dir, basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, basePath: basePath}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return path.Join(s.basePath, name), nil
}
