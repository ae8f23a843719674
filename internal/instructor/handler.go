package instructor

import (
	"errors"
	"net/http"

	"gymplace/internal/api"
	"gymplace/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrInstructorNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Instructor not found", Code: api.CodeNotFound})
		return
	}
	logger.Error("instructor request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}

// @Summary      List instructors
// @Tags         instructors
// @Produce      json
// @Success      200 {array} instructor.Instructor
// @Router       /instructors [get]
func (h *Handler) List(c *gin.Context) {
	instructors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, instructors)
}

// @Summary      Get an instructor
// @Tags         instructors
// @Produce      json
// @Param        instructorID path int true "Instructor ID"
// @Success      200 {object} instructor.Instructor
// @Failure      404 {object} api.ErrorResponse
// @Router       /instructors/{instructorID} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := api.PathID(c, "instructorID", "instructor")
	if !ok {
		return
	}

	in, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}

// @Summary      Create an instructor
// @Tags         admin,instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body instructor.InstructorRequest true "Instructor"
// @Success      201 {object} instructor.Instructor
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /admin/instructors [post]
func (h *Handler) Create(c *gin.Context) {
	var req InstructorRequest
	if !api.BindJSON(c, &req) {
		return
	}

	in, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, in)
}

// @Summary      Update an instructor
// @Tags         admin,instructors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        instructorID path int true "Instructor ID"
// @Param        request body instructor.InstructorRequest true "Instructor"
// @Success      200 {object} instructor.Instructor
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/instructors/{instructorID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "instructorID", "instructor")
	if !ok {
		return
	}

	var req InstructorRequest
	if !api.BindJSON(c, &req) {
		return
	}

	in, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, in)
}
