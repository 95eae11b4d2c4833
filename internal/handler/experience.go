package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// listExperience handles GET /api/experience.
func (h *Handler) listExperience(c *gin.Context) {
	entries, err := h.svc.Experience.List(c.Request.Context(), true, c.Query("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// groupedExperience handles GET /api/experience/grouped.
func (h *Handler) groupedExperience(c *gin.Context) {
	grouped, err := h.svc.Experience.Grouped(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// adminListExperience handles GET /api/experience/admin.
func (h *Handler) adminListExperience(c *gin.Context) {
	entries, err := h.svc.Experience.List(c.Request.Context(), false, c.Query("type"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// getExperience handles GET /api/experience/:id.
func (h *Handler) getExperience(c *gin.Context) {
	entry, err := h.svc.Experience.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// createExperience handles POST /api/experience.
func (h *Handler) createExperience(c *gin.Context) {
	var entry domain.Experience
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.bindError(c, err)
		return
	}

	created, err := h.svc.Experience.Create(c.Request.Context(), &entry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateExperience handles PUT /api/experience/:id.
func (h *Handler) updateExperience(c *gin.Context) {
	var entry domain.Experience
	if err := c.ShouldBindJSON(&entry); err != nil {
		h.bindError(c, err)
		return
	}

	updated, err := h.svc.Experience.Update(c.Request.Context(), c.Param("id"), &entry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteExperience handles DELETE /api/experience/:id.
func (h *Handler) deleteExperience(c *gin.Context) {
	if err := h.svc.Experience.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Experience deleted successfully"})
}
