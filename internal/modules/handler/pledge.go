package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
	"github.com/shopspring/decimal"
)

type PledgeHandler struct {
	svc service.PledgeService
}

func NewPledgeHandler(s service.PledgeService) *PledgeHandler {
	return &PledgeHandler{svc: s}
}

type CreatePledgeReq struct {
	ProjectID  *uuid.UUID      `json:"project_id"`
	UserID     uuid.UUID       `json:"user_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	RewardTier *string         `json:"reward_tier"`
}

// CreatePledge godoc
//
//	@Summary		Create pledge
//	@Description	Record a pledge and atomically roll it into the project totals
//	@Tags			pledges
//	@Accept			json
//	@Produce		json
//	@Param			project_id	path	string					true	"Project ID"	Format(uuid)
//	@Param			payload		body	handler.CreatePledgeReq	true	"Pledge payload"
//	@Success		201	{object}	serializer.Response{data=model.Pledge}
//	@Failure		400	{object}	serializer.Response
//	@Failure		404	{object}	serializer.Response
//	@Router			/projects/{project_id}/pledges [post]
func (h *PledgeHandler) CreatePledge(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	req := CreatePledgeReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	// A body project_id, when present, must agree with the path.
	if req.ProjectID != nil && *req.ProjectID != projectID {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("project_id mismatch", nil))
		return
	}

	pledge, err := h.svc.Create(c.Request.Context(), service.CreatePledgeInput{
		ProjectID:  projectID,
		UserID:     req.UserID,
		Amount:     req.Amount,
		RewardTier: req.RewardTier,
	})
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, serializer.Response{Data: pledge})
}

// ListPledges godoc
//
//	@Summary		List pledges
//	@Tags			pledges
//	@Produce		json
//	@Param			project_id	path	string	true	"Project ID"	Format(uuid)
//	@Success		200	{object}	serializer.Response{data=[]model.Pledge}
//	@Router			/projects/{project_id}/pledges [get]
func (h *PledgeHandler) ListPledges(c *gin.Context) {
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
