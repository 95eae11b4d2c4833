package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/service"
)

// Services bundles the services the HTTP layer depends on.
type Services struct {
	Analytics  service.AnalyticsServicer
	Profile    service.ProfileServicer
	Skill      service.SkillServicer
	Experience service.ExperienceServicer
	Blog       service.BlogServicer
	Project    service.ProjectServicer
	Contact    service.ContactServicer
	Auth       service.AuthServicer
	Upload     service.UploadServicer
}

// Handler is the HTTP surface of the service.
type Handler struct {
	svc       Services
	router    *gin.Engine
	log       *zap.Logger
	uploadDir string
}

// NewHandler creates the handler and registers all routes. uploadDir is the
// local directory served under /uploads.
func NewHandler(svc Services, uploadDir string, log *zap.Logger) *Handler {
	h := &Handler{
		svc:       svc,
		router:    gin.New(),
		log:       log,
		uploadDir: uploadDir,
	}

	h.router.Use(gin.Recovery())
	h.router.Use(h.requestLogger())
	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.Static("/uploads", h.uploadDir)

	api := h.router.Group("/api")
	admin := h.requireAdmin()

	api.POST("/auth/login", h.login)

	api.POST("/analytics/track", h.trackEvent)
	api.GET("/analytics/dashboard", admin, h.dashboard)
	api.GET("/analytics/detailed", admin, h.detailedAnalytics)

	api.GET("/profile", h.getProfile)
	api.GET("/profile/admin", admin, h.getAdminProfile)
	api.PUT("/profile", admin, h.saveProfile)
	api.POST("/profile/resume", admin, h.setResume)
	api.GET("/profile/resume/download", h.downloadResume)

	api.GET("/skills", h.listSkills)
	api.GET("/skills/grouped", h.groupedSkills)
	api.GET("/skills/admin", admin, h.adminListSkills)
	api.POST("/skills", admin, h.createSkill)
	api.PUT("/skills/reorder", admin, h.reorderSkills)
	api.PUT("/skills/:id", admin, h.updateSkill)
	api.DELETE("/skills/:id", admin, h.deleteSkill)

	api.GET("/experience", h.listExperience)
	api.GET("/experience/grouped", h.groupedExperience)
	api.GET("/experience/admin", admin, h.adminListExperience)
	api.GET("/experience/:id", h.getExperience)
	api.POST("/experience", admin, h.createExperience)
	api.PUT("/experience/:id", admin, h.updateExperience)
	api.DELETE("/experience/:id", admin, h.deleteExperience)

	api.GET("/blog", h.listBlogs)
	api.GET("/blog/categories", h.blogCategories)
	api.GET("/blog/tags", h.blogTags)
	api.GET("/blog/admin", admin, h.adminListBlogs)
	api.GET("/blog/admin/:id", admin, h.adminGetBlog)
	api.GET("/blog/slug/:slug", h.getBlogBySlug)
	api.POST("/blog/:id/like", h.likeBlog)
	api.POST("/blog", admin, h.createBlog)
	api.PUT("/blog/:id", admin, h.updateBlog)
	api.DELETE("/blog/:id", admin, h.deleteBlog)

	api.GET("/projects", h.listProjects)
	api.GET("/projects/admin", admin, h.adminListProjects)
	api.GET("/projects/:id", h.getProject)
	api.POST("/projects", admin, h.createProject)
	api.PUT("/projects/:id", admin, h.updateProject)
	api.DELETE("/projects/:id", admin, h.deleteProject)

	api.POST("/contact", h.submitContact)
	api.GET("/contact", admin, h.listContacts)
	api.PUT("/contact/:id/read", admin, h.markContactRead)

	api.POST("/upload/single", admin, h.uploadFile)
	api.DELETE("/upload/:type/:filename", admin, h.deleteFile)
}

// healthCheck handles GET /health.
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// respondError maps a service error onto an HTTP status and logs it at a
// severity matching who caused it.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error:   "unauthorized",
			Message: err.Error(),
		})
	default:
		h.log.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: "internal server error",
		})
	}
}

// bindError reports a gin binding failure as a validation error.
func (h *Handler) bindError(c *gin.Context, err error) {
	h.log.Warn("Invalid request",
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
