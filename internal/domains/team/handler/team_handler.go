package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"consulting-backend/internal/domains/team"
	"consulting-backend/internal/shared/response"
)

type TeamHandler struct {
	service team.Service
}

func NewTeamHandler(svc team.Service) *TeamHandler {
	return &TeamHandler{
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

// Create handles POST /admin/team (multipart form + optional portrait).
func (h *TeamHandler) Create(c *gin.Context) {
	var req team.CreateTeamMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid team member form", err)
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

	member, err := h.service.Create(c.Request.Context(), &req, image)
	if err != nil {
		response.ErrorResponse(c, team.ToHTTPStatus(err), "CREATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, member.ToResponse())
}

// GetAll handles GET /team?category=. The category filter runs
// in-process after the full fetch, mirroring how the site filters.
func (h *TeamHandler) GetAll(c *gin.Context) {
	members, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	category := c.Query("category")

	resp := make([]team.TeamMemberResponse, 0, len(members))
	for i := range members {
		if category != "" {
			if members[i].Category == nil || *members[i].Category != category {
				continue
			}
		}
		resp = append(resp, *members[i].ToResponse())
	}

	response.SuccessWithMeta(c, http.StatusOK, resp, &response.Meta{Total: len(resp)})
}

// GetByID handles GET /team/:id.
func (h *TeamHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	member, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, team.ToHTTPStatus(err), "GET_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, member.ToResponse())
}

// Update handles PUT /admin/team/:id. Only form fields actually present
// in the multipart body are merged; absence means "leave as stored".
func (h *TeamHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	req := partialUpdateRequest(c)
	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid team member form", err)
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

	member, err := h.service.Update(c.Request.Context(), id, req, image)
	if err != nil {
		response.ErrorResponse(c, team.ToHTTPStatus(err), "UPDATE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, member.ToResponse())
}

// partialUpdateRequest builds the update request from the form parts
// that were actually submitted, so "field absent" and "field set to
// empty" stay distinguishable.
func partialUpdateRequest(c *gin.Context) *team.UpdateTeamMemberRequest {
	req := &team.UpdateTeamMemberRequest{}

	if v, ok := c.GetPostForm("name"); ok {
		req.Name = &v
	}
	if v, ok := c.GetPostForm("position"); ok {
		req.Position = &v
	}
	if v, ok := c.GetPostForm("expertise"); ok {
		req.Expertise = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		req.Category = &v
	}
	if v, ok := c.GetPostForm("bio"); ok {
		req.Bio = &v
	}
	if v, ok := c.GetPostForm("remove_image"); ok {
		req.RemoveImage = v == "true" || v == "1" || v == "on"
	}

	return req
}

// Delete handles DELETE /admin/team/:id.
func (h *TeamHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid UUID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, team.ToHTTPStatus(err), "DELETE_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}
