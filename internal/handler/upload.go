package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// uploadFile handles POST /api/upload/single. The upload type comes from
// the "type" form field; the file from the "file" field.
func (h *Handler) uploadFile(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.svc.Upload.Store(c.Request.Context(), c.PostForm("type"), header)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// deleteFile handles DELETE /api/upload/:type/:filename.
func (h *Handler) deleteFile(c *gin.Context) {
	if err := h.svc.Upload.Remove(c.Request.Context(), c.Param("type"), c.Param("filename")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "File deleted successfully"})
}
