package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// listSkills handles GET /api/skills.
func (h *Handler) listSkills(c *gin.Context) {
	skills, err := h.svc.Skill.List(c.Request.Context(), true)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// groupedSkills handles GET /api/skills/grouped.
func (h *Handler) groupedSkills(c *gin.Context) {
	grouped, err := h.svc.Skill.Grouped(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, grouped)
}

// adminListSkills handles GET /api/skills/admin.
func (h *Handler) adminListSkills(c *gin.Context) {
	skills, err := h.svc.Skill.List(c.Request.Context(), false)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// createSkill handles POST /api/skills.
func (h *Handler) createSkill(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		h.bindError(c, err)
		return
	}

	created, err := h.svc.Skill.Create(c.Request.Context(), &skill)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateSkill handles PUT /api/skills/:id.
func (h *Handler) updateSkill(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		h.bindError(c, err)
		return
	}

	updated, err := h.svc.Skill.Update(c.Request.Context(), c.Param("id"), &skill)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteSkill handles DELETE /api/skills/:id.
func (h *Handler) deleteSkill(c *gin.Context) {
	if err := h.svc.Skill.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Skill deleted successfully"})
}

// reorderSkills handles PUT /api/skills/reorder.
func (h *Handler) reorderSkills(c *gin.Context) {
	var req dto.ReorderSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	if err := h.svc.Skill.Reorder(c.Request.Context(), req.Skills); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Skills reordered successfully"})
}
