package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
)

// login handles POST /api/auth/login.
func (h *Handler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	token, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}
