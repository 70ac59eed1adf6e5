package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/domains/contact"
	"consulting-backend/internal/shared/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{
		service: svc,
	}
}

// Create handles POST /contact (public, JSON body).
func (h *ContactHandler) Create(c *gin.Context) {
	var req contact.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, contact.ErrStorageFailure) {
			response.InternalServerError(c, err.Error())
			return
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid contact submission", err)
		return
	}

	response.Success(c, http.StatusCreated, msg)
}

// GetAll handles GET /admin/contact.
func (h *ContactHandler) GetAll(c *gin.Context) {
	messages, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, messages, &response.Meta{Total: len(messages)})
}

// Delete handles DELETE /admin/contact/:id.
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, contact.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
