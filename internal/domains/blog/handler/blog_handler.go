package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/domains/blog"
	"consulting-backend/internal/shared/response"
)

type BlogHandler struct {
	service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{
		service: svc,
	}
}

// openImageFile extracts the optional "image" part from a multipart
// form. A missing part is not an error: it means "keep the old image".
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

// Create handles POST /admin/blogs (multipart form + mandatory image).
func (h *BlogHandler) Create(c *gin.Context) {
	var form blog.BlogFormData
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid blog form", err)
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

	post, err := h.service.Create(c.Request.Context(), &form, image)
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, post.ToResponse())
}

// GetAll handles GET /blogs.
func (h *BlogHandler) GetAll(c *gin.Context) {
	posts, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	resp := make([]blog.BlogResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, *posts[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, resp, &response.Meta{Total: len(resp)})
}

// GetByID handles GET /blogs/:id.
func (h *BlogHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	post, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post.ToResponse())
}

// GetBySlug handles GET /blogs/slug/:slug.
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	post, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post.ToResponse())
}

// Update handles PUT /admin/blogs/:id (multipart form + optional image).
func (h *BlogHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	var form blog.BlogFormData
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := form.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid blog form", err)
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

	post, err := h.service.Update(c.Request.Context(), id, &form, image)
	if err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, post.ToResponse())
}

// Delete handles DELETE /admin/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, blog.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
