package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/model"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type ProjectHandler struct {
	svc service.ProjectService
}

func NewProjectHandler(s service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: s}
}

type ListProjectsReq struct {
	Skip  int `form:"skip,default=0" binding:"min=0"`
	Limit int `form:"limit,default=100" binding:"min=1,max=500"`
}

// ListProjects godoc
//
//	@Summary		List projects
//	@Tags			projects
//	@Produce		json
//	@Param			skip	query	integer	false	"Offset"
//	@Param			limit	query	integer	false	"Page size, default 100"
//	@Success		200	{object}	serializer.Response{data=[]model.Project}
//	@Router			/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req := ListProjectsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	items, err := h.svc.List(c.Request.Context(), req.Skip, req.Limit)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: items})
}

// GetProject godoc
//
//	@Summary		Get project
//	@Tags			projects
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

type CreateProjectReq struct {
	Name              string          `json:"name" binding:"required"`
	Description       string          `json:"description"`
	GoalAmount        decimal.Decimal `json:"goal_amount"`
	Category          string          `json:"category"`
	Location          string          `json:"location"`
	OrbitAltitudeKM   *float64        `json:"orbit_altitude_km"`
	Status            string          `json:"status"`
	ImageURL          string          `json:"image_url"`
	VideoURL          string          `json:"video_url"`
	TechSummary       string          `json:"tech_summary"`
	EstimatedTimeline string          `json:"estimated_timeline"`
	Risks             string          `json:"risks"`
	Tags              datatypes.JSON  `json:"tags" swaggertype:"array,string"`
	LaunchDate        *time.Time      `json:"launch_date"`
	CreatorID         uuid.UUID       `json:"creator_id" binding:"required"`
}

// CreateProject godoc
//
//	@Summary		Create project
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateProjectReq	true	"Project payload"
//	@Success		201	{object}	serializer.Response{data=model.Project}
//	@Router			/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := CreateProjectReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project := model.Project{
		Name:              req.Name,
		Description:       req.Description,
		GoalAmount:        req.GoalAmount,
		Category:          req.Category,
		Location:          req.Location,
		OrbitAltitudeKM:   req.OrbitAltitudeKM,
		Status:            req.Status,
		ImageURL:          req.ImageURL,
		VideoURL:          req.VideoURL,
		TechSummary:       req.TechSummary,
		EstimatedTimeline: req.EstimatedTimeline,
		Risks:             req.Risks,
		Tags:              req.Tags,
		LaunchDate:        req.LaunchDate,
		CreatorID:         req.CreatorID,
	}
	if project.Location == "" {
		project.Location = "LEO"
	}

	if err := h.svc.Create(c.Request.Context(), &project); err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: project})
}

// UpdateProject godoc
//
//	@Summary		Update project
//	@Description	Apply a partial update; absent fields stay untouched
//	@Tags			projects
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	service.ProjectPatch	true	"Patch payload"
//	@Success		200	{object}	serializer.Response{data=model.Project}
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	patch := service.ProjectPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	project, err := h.svc.Update(c.Request.Context(), id, patch)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: project})
}

// DeleteProject godoc
//
//	@Summary		Delete project
//	@Description	Delete a project and, via cascade, its pledges and updates
//	@Tags			projects
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("project_id"))
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
