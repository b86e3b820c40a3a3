package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/config"
	"github.com/launchlabs/leo-backend/internal/middleware"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

type AuthHandler struct {
	svc service.AuthService
	cfg *config.Config
}

func NewAuthHandler(s service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{svc: s, cfg: cfg}
}

type LoginReq struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Login godoc
//
//	@Summary		Login
//	@Description	Exchange username+password for a session cookie
//	@Tags			auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Success		200	{object}	serializer.Response
//	@Failure		400	{object}	serializer.Response
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req := LoginReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	token, ttl, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	// The SPA lives on another origin, so the cookie must survive
	// cross-site requests: SameSite=None requires Secure.
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.CookieName, token, int(ttl.Seconds()), "/", h.cfg.Auth.CookieDomain, true, true)

	c.JSON(http.StatusOK, serializer.Response{Msg: "login ok"})
}

// Check godoc
//
//	@Summary		Check session
//	@Description	Return the authenticated subject for the current cookie
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	serializer.Response
//	@Failure		401	{object}	serializer.Response
//	@Router			/auth/check [get]
func (h *AuthHandler) Check(c *gin.Context) {
	user := c.MustGet(middleware.UserKey).(*model.User)
	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"username": user.Username}})
}
