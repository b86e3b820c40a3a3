package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

type UpdateHandler struct {
	svc service.UpdateService
}

func NewUpdateHandler(s service.UpdateService) *UpdateHandler {
	return &UpdateHandler{svc: s}
}

type CreateUpdateReq struct {
	ProjectID *uuid.UUID `json:"project_id"`
	Title     string     `json:"title" binding:"required"`
	Content   string     `json:"content" binding:"required"`
}

// CreateUpdate godoc
//
//	@Summary		Post project update
//	@Tags			updates
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreateUpdateReq	true	"Update payload"
//	@Success		201	{object}	serializer.Response{data=model.ProjectUpdate}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/updates [post]
func (h *UpdateHandler) CreateUpdate(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreateUpdateReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	if req.ProjectID != nil && *req.ProjectID != projectID {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("project_id mismatch", nil))
		return
	}

	upd, err := h.svc.Create(c.Request.Context(), projectID, req.Title, req.Content)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: upd})
}

// ListUpdates godoc
//
//	@Summary		List project updates
//	@Tags			updates
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=[]model.ProjectUpdate}
//	@Router			/projects/{project_id}/updates [get]
func (h *UpdateHandler) ListUpdates(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	items, err := h.svc.ListForProject(c.Request.Context(), projectID)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}
