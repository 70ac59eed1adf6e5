package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/domains/user"
	"consulting-backend/internal/shared/response"
	"consulting-backend/pkg/jwt"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{
		service: svc,
	}
}

// Login handles POST /auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Logout handles POST /auth/logout. It revokes the access token that
// authenticated this very request.
func (h *UserHandler) Logout(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing session claims")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"logged_out": true})
}

// Refresh handles POST /auth/refresh.
func (h *UserHandler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "REFRESH_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me handles GET /auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	adminID, ok := adminIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing session claims")
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), adminID)
	if err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// ChangePassword handles PUT /auth/change-password.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	adminID, ok := adminIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "missing session claims")
		return
	}

	var req user.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), adminID, &req); err != nil {
		response.ErrorResponse(c, user.ToHTTPStatus(err), "CHANGE_PASSWORD_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"changed": true})
}

func claimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*jwt.Claims)
	return claims, ok
}

func adminIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("adminID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
