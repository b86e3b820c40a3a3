package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/launchlabs/leo-backend/internal/modules/serializer"
	"github.com/launchlabs/leo-backend/internal/modules/service"
)

type FileHandler struct {
	svc service.UploadService
}

func NewFileHandler(s service.UploadService) *FileHandler {
	return &FileHandler{svc: s}
}

// UploadImage godoc
//
//	@Summary		Upload image
//	@Description	Store a multipart image under a generated unique name
//	@Tags			files
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Success		200	{object}	serializer.Response
//	@Failure		401	{object}	serializer.Response
//	@Router			/files/upload/image [post]
func (h *FileHandler) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("missing file", err))
		return
	}

	url, err := h.svc.SaveImage(c.Request.Context(), fh)
	if err != nil {
		status, resp := serializer.FromError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, serializer.Response{Data: gin.H{"url": url}})
}
