package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// getProfile handles GET /api/profile.
func (h *Handler) getProfile(c *gin.Context) {
	profile, err := h.svc.Profile.PublicProfile(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// getAdminProfile handles GET /api/profile/admin.
func (h *Handler) getAdminProfile(c *gin.Context) {
	profile, err := h.svc.Profile.AdminProfile(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// saveProfile handles PUT /api/profile.
func (h *Handler) saveProfile(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.bindError(c, err)
		return
	}

	saved, err := h.svc.Profile.Save(c.Request.Context(), &profile)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// setResume handles POST /api/profile/resume.
func (h *Handler) setResume(c *gin.Context) {
	var req dto.SetResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	saved, err := h.svc.Profile.SetResume(c.Request.Context(), req.ResumeURL)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// downloadResume handles GET /api/profile/resume/download. The download
// event is recorded best-effort; a failed append never blocks the download.
func (h *Handler) downloadResume(c *gin.Context) {
	url, err := h.svc.Profile.ResumeURL(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	track := dto.TrackEventRequest{Type: string(domain.EventResumeDownload), Page: c.Request.URL.Path}
	if _, err := h.svc.Analytics.Track(c.Request.Context(), &track, requestMeta(c, "")); err != nil {
		h.log.Warn("Failed to record resume download", zap.Error(err))
	}

	c.JSON(http.StatusOK, dto.ResumeDownloadResponse{DownloadURL: url})
}
