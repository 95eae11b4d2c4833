package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/service"
)

// requestMeta derives client metadata from the request itself so tracking
// payloads cannot spoof it.
func requestMeta(c *gin.Context, sessionID string) service.RequestMeta {
	return service.RequestMeta{
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
		IPAddress: c.ClientIP(),
		SessionID: sessionID,
	}
}

// trackEvent handles POST /api/analytics/track.
func (h *Handler) trackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	eventID, err := h.svc.Analytics.Track(c.Request.Context(), &req, requestMeta(c, req.SessionID))
	if err != nil {
		h.respondError(c, err)
		return
	}

	h.log.Debug("Event tracked",
		zap.String("event_id", eventID),
		zap.String("type", req.Type))

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Event tracked successfully"})
}

// dashboard handles GET /api/analytics/dashboard.
func (h *Handler) dashboard(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.svc.Analytics.Dashboard(c.Request.Context(), req.Period)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// detailedAnalytics handles GET /api/analytics/detailed.
func (h *Handler) detailedAnalytics(c *gin.Context) {
	var req dto.DetailedAnalyticsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.svc.Analytics.Detailed(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
