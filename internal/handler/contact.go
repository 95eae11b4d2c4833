package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// submitContact handles POST /api/contact. A successful submission also
// records a contact_form event, best-effort.
func (h *Handler) submitContact(c *gin.Context) {
	var msg domain.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		h.bindError(c, err)
		return
	}

	stored, err := h.svc.Contact.Submit(c.Request.Context(), &msg)
	if err != nil {
		h.respondError(c, err)
		return
	}

	track := dto.TrackEventRequest{Type: string(domain.EventContactForm), Page: c.Request.URL.Path}
	if _, err := h.svc.Analytics.Track(c.Request.Context(), &track, requestMeta(c, "")); err != nil {
		h.log.Warn("Failed to record contact form event",
			zap.String("id", stored.ID.Hex()),
			zap.Error(err))
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Message sent successfully"})
}

// listContacts handles GET /api/contact.
func (h *Handler) listContacts(c *gin.Context) {
	messages, err := h.svc.Contact.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// markContactRead handles PUT /api/contact/:id/read.
func (h *Handler) markContactRead(c *gin.Context) {
	if err := h.svc.Contact.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Message marked as read"})
}
