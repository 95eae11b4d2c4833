package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// listProjects handles GET /api/projects.
func (h *Handler) listProjects(c *gin.Context) {
	projects, err := h.svc.Project.List(c.Request.Context(), true)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// adminListProjects handles GET /api/projects/admin.
func (h *Handler) adminListProjects(c *gin.Context) {
	projects, err := h.svc.Project.List(c.Request.Context(), false)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// getProject handles GET /api/projects/:id.
func (h *Handler) getProject(c *gin.Context) {
	project, err := h.svc.Project.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// createProject handles POST /api/projects.
func (h *Handler) createProject(c *gin.Context) {
	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.bindError(c, err)
		return
	}

	created, err := h.svc.Project.Create(c.Request.Context(), &project)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// updateProject handles PUT /api/projects/:id.
func (h *Handler) updateProject(c *gin.Context) {
	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		h.bindError(c, err)
		return
	}

	updated, err := h.svc.Project.Update(c.Request.Context(), c.Param("id"), &project)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// deleteProject handles DELETE /api/projects/:id.
func (h *Handler) deleteProject(c *gin.Context) {
	if err := h.svc.Project.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Project deleted successfully"})
}
