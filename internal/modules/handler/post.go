package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/middleware"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

type PostHandler struct {
	svc service.PostService
}

func NewPostHandler(s service.PostService) *PostHandler {
	return &PostHandler{svc: s}
}

// ListPosts godoc
//
//	@Summary		List posts
//	@Tags			posts
//	@Produce		json
//	@Success		200	{object}	serializer.Response{data=[]model.Post}
//	@Router			/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetPost godoc
//
//	@Summary		Get post
//	@Tags			posts
//	@Produce		json
//	@Param			post_id	path	string	true	"Post ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Post}
//	@Failure		404	{object}	serializer.Response
//	@Router			/posts/{post_id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	post, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: post})
}

type CreatePostReq struct {
	ImageURL string  `json:"image_url"`
	Title    string  `json:"title" binding:"required"`
	Body     string  `json:"body" binding:"required"`
	Tags     *string `json:"tags"`
}

// CreatePost godoc
//
//	@Summary		Create post
//	@Tags			posts
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreatePostReq	true	"Post payload"
//	@Success		201	{object}	serializer.Response{data=model.Post}
//	@Router			/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	req := CreatePostReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	author := c.MustGet(middleware.UserKey).(*model.User)

	post := model.Post{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		Body:     req.Body,
		Tags:     req.Tags,
		Author:   author.Username,
	}
	if err := h.svc.Create(c.Request.Context(), &post); err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: post})
}

// DeletePost godoc
//
//	@Summary		Delete post
//	@Tags			posts
//	@Produce		json
//	@Param			post_id	path	string	true	"Post ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/posts/{post_id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("post_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"deleted": true}})
}
