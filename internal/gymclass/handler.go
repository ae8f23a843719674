package gymclass

import (
	"errors"
	"net/http"

	"gymplace/internal/api"
	"gymplace/internal/auth"
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
	if errors.Is(err, ErrClassNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found", Code: api.CodeNotFound})
		return
	}
	logger.Error("class request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}

// @Summary      Weekly class schedule
// @Tags         classes
// @Produce      json
// @Success      200 {array} gymclass.ScheduleEntry
// @Router       /classes [get]
func (h *Handler) Schedule(c *gin.Context) {
	entries, err := h.service.Schedule(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// @Summary      Class detail
// @Description  Signed-in callers also get is_registered; admins get the active roster.
// @Tags         classes
// @Produce      json
// @Param        classID path int true "Class ID"
// @Success      200 {object} gymclass.ClassDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID} [get]
func (h *Handler) Detail(c *gin.Context) {
	id, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}

	var viewer *auth.Principal
	if p, ok := auth.GetPrincipal(c); ok {
		viewer = &p
	}

	detail, err := h.service.Detail(c.Request.Context(), id, viewer)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// @Summary      Create a class
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body gymclass.ClassRequest true "Class"
// @Success      201 {object} gymclass.GymClass
// @Failure      400 {object} api.ValidationErrorResponse
// @Router       /admin/classes [post]
func (h *Handler) Create(c *gin.Context) {
	var req ClassRequest
	if !api.BindJSON(c, &req) {
		return
	}

	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

// @Summary      Update a class
// @Tags         admin,classes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Param        request body gymclass.ClassRequest true "Class"
// @Success      200 {object} gymclass.GymClass
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/classes/{classID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}

	var req ClassRequest
	if !api.BindJSON(c, &req) {
		return
	}

	class, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

// @Summary      Activate a class
// @Tags         admin,classes
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Success      200 {object} api.MessageResponse
// @Router       /admin/classes/{classID}/activate [post]
func (h *Handler) Activate(c *gin.Context) {
	id, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}
	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Class activated"})
}

// @Summary      Deactivate a class
// @Tags         admin,classes
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Success      200 {object} api.MessageResponse
// @Router       /admin/classes/{classID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Class deactivated"})
}
