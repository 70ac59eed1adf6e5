package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/domains/testimonial"
	"consulting-backend/internal/shared/response"
)

type TestimonialHandler struct {
	service testimonial.Service
}

func NewTestimonialHandler(svc testimonial.Service) *TestimonialHandler {
	return &TestimonialHandler{
		service: svc,
	}
}

func openImageFile(c *gin.Context) (multipart.File, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	return fileHeader.Open()
}

// Create handles POST /admin/testimonials (multipart form + optional photo).
func (h *TestimonialHandler) Create(c *gin.Context) {
	var form testimonial.TestimonialFormData
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid testimonial form", err)
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		response.BadRequest(c, "could not read image upload: "+err.Error())
		return
	}
	var image io.Reader
	if file != nil {
		defer file.Close()
		image = file
	}

	t, err := h.service.Create(c.Request.Context(), &form, image)
	if err != nil {
		response.ErrorResponse(c, testimonial.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, t.ToResponse())
}

// GetAll handles GET /testimonials.
func (h *TestimonialHandler) GetAll(c *gin.Context) {
	items, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, toResponses(items), &response.Meta{Total: len(items)})
}

// GetFeatured handles GET /testimonials/featured (homepage carousel).
func (h *TestimonialHandler) GetFeatured(c *gin.Context) {
	items, err := h.service.GetFeatured(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, toResponses(items), &response.Meta{Total: len(items)})
}

// GetByID handles GET /testimonials/:id.
func (h *TestimonialHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, testimonial.ToHTTPStatus(err), "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, t.ToResponse())
}

// Update handles PUT /admin/testimonials/:id.
func (h *TestimonialHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var form testimonial.TestimonialFormData
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid testimonial form", err)
		return
	}

	file, err := openImageFile(c)
	if err != nil {
		response.BadRequest(c, "could not read image upload: "+err.Error())
		return
	}
	var image io.Reader
	if file != nil {
		defer file.Close()
		image = file
	}

	t, err := h.service.Update(c.Request.Context(), id, &form, image)
	if err != nil {
		response.ErrorResponse(c, testimonial.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, t.ToResponse())
}

// Delete handles DELETE /admin/testimonials/:id.
func (h *TestimonialHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, testimonial.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func toResponses(items []testimonial.Testimonial) []testimonial.TestimonialResponse {
	resp := make([]testimonial.TestimonialResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *items[i].ToResponse())
	}
	return resp
}
