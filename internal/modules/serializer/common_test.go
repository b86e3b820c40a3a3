package serializer

import (
	"errors"
	"net/http"
	"testing"

	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", apperr.New(apperr.KindUnauthenticated, "no session"), http.StatusUnauthorized},
		{"invalid token", apperr.New(apperr.KindInvalidToken, "bad signature"), http.StatusUnauthorized},
		{"expired token", apperr.New(apperr.KindTokenExpired, "expired"), http.StatusUnauthorized},
		{"forbidden", apperr.New(apperr.KindForbidden, "not admin"), http.StatusForbidden},
		{"not found", apperr.New(apperr.KindNotFound, "gone"), http.StatusNotFound},
		{"invalid input", apperr.New(apperr.KindInvalidInput, "bad amount"), http.StatusBadRequest},
		{"persistence", apperr.New(apperr.KindPersistence, "db down"), http.StatusInternalServerError},
		{"untyped error", errors.New("anything"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestFromError(t *testing.T) {
	t.Run("typed error keeps its message", func(t *testing.T) {
		status, resp := FromError(apperr.New(apperr.KindNotFound, "project not found"))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "project not found", resp.Msg)
	})

	t.Run("wrapped typed error is still mapped", func(t *testing.T) {
		inner := apperr.New(apperr.KindInvalidInput, "pledge amount must be positive")
		status, resp := FromError(inner)

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "pledge amount must be positive", resp.Msg)
	})

	t.Run("untyped error hides detail behind a generic message", func(t *testing.T) {
		status, resp := FromError(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal error", resp.Msg)
	})
}
