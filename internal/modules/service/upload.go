package service

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/infra/blob"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
)

type UploadService interface {
	SaveImage(ctx context.Context, fh *multipart.FileHeader) (string, error)
}

type uploadService struct{ store blob.Store }

func NewUploadService(store blob.Store) UploadService {
	return &uploadService{store: store}
}

// SaveImage stores the file under a fresh uuid name, keeping the
// original extension, and returns the URL to serve it from.
func (s *uploadService) SaveImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh == nil || fh.Size == 0 {
		return "", apperr.New(apperr.KindInvalidInput, "empty upload")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := uuid.New().String() + ext

	url, err := s.store.Save(ctx, name, fh)
	if err != nil {
		return "", apperr.Wrap(apperr.KindPersistence, "store upload", err)
	}
	return url, nil
}
