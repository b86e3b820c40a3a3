package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/middleware"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of service.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, time.Duration, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func setupAuthHandlerRouter(svc *MockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc, &config.Config{})
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/auth/check", middleware.SessionAuth(svc), h.Check)
	return r
}

func postLogin(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.CookieName {
			return c
		}
	}
	return nil
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		form           url.Values
		setup          func(*MockAuthService)
		expectedStatus int
		wantCookie     bool
	}{
		{
			name: "successful login sets the session cookie",
			form: url.Values{"username": {"admin"}, "password": {"orbit123"}},
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "admin", "orbit123").
					Return("signed-token", 30*time.Minute, nil)
			},
			expectedStatus: http.StatusOK,
			wantCookie:     true,
		},
		{
			name: "bad credentials are a 400 with no cookie",
			form: url.Values{"username": {"admin"}, "password": {"wrong"}},
			setup: func(svc *MockAuthService) {
				svc.On("Login", mock.Anything, "admin", "wrong").
					Return("", time.Duration(0), apperr.New(apperr.KindInvalidInput, "bad credentials"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password fails binding",
			form:           url.Values{"username": {"admin"}},
			setup:          func(svc *MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAuthService{}
			tt.setup(svc)
			router := setupAuthHandlerRouter(svc)

			w := postLogin(router, tt.form)

			assert.Equal(t, tt.expectedStatus, w.Code)
			cookie := sessionCookie(w)
			if tt.wantCookie {
				assert.NotNil(t, cookie)
			} else {
				assert.Nil(t, cookie)
			}

			svc.AssertExpectations(t)
		})
	}
}

// The cookie must survive a cross-origin SPA: HttpOnly, Secure,
// SameSite=None, scoped to /, expiring with the token.
func TestAuthHandler_Login_CookieAttributes(t *testing.T) {
	svc := &MockAuthService{}
	svc.On("Login", mock.Anything, "admin", "orbit123").
		Return("signed-token", 30*time.Minute, nil)
	router := setupAuthHandlerRouter(svc)

	w := postLogin(router, url.Values{"username": {"admin"}, "password": {"orbit123"}})

	cookie := sessionCookie(w)
	assert.NotNil(t, cookie)
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((30 * time.Minute).Seconds()), cookie.MaxAge)
}

func TestAuthHandler_Check(t *testing.T) {
	t.Run("valid session echoes the subject", func(t *testing.T) {
		svc := &MockAuthService{}
		svc.On("Verify", mock.Anything, "signed-token").
			Return(&model.User{Username: "admin", IsAdmin: true}, nil)
		router := setupAuthHandlerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
		req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "signed-token"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
		svc.AssertExpectations(t)
	})

	t.Run("no session is unauthorized", func(t *testing.T) {
		svc := &MockAuthService{}
		router := setupAuthHandlerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/auth/check", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
