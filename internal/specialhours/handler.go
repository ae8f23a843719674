package specialhours

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gymplace/internal/api"
	"gymplace/internal/db"
	"gymplace/internal/logger"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSpecialHoursNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Special hours not found", Code: api.CodeNotFound})
	case errors.Is(err, ErrInvalidHours), errors.Is(err, ErrInvalidClosureType):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: api.CodeValidation})
	default:
		logger.Error("special hours request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}
}

// @Summary      Upcoming special hours
// @Tags         special-hours
// @Produce      json
// @Param        limit query int false "Max entries (default 10)"
// @Success      200 {array} specialhours.SpecialHours
// @Router       /special-hours [get]
func (h *Handler) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	hours, err := h.service.Upcoming(c.Request.Context(), db.DateOf(h.now()), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// @Summary      Create special hours
// @Tags         admin,special-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body specialhours.SpecialHoursRequest true "Special hours"
// @Success      201 {object} specialhours.SpecialHours
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/special-hours [post]
func (h *Handler) Create(c *gin.Context) {
	var req SpecialHoursRequest
	if !api.BindJSON(c, &req) {
		return
	}

	hours, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, hours)
}

// @Summary      Update special hours
// @Tags         admin,special-hours
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        hoursID path int true "Special hours ID"
// @Param        request body specialhours.SpecialHoursRequest true "Special hours"
// @Success      200 {object} specialhours.SpecialHours
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/special-hours/{hoursID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "hoursID", "special hours")
	if !ok {
		return
	}

	var req SpecialHoursRequest
	if !api.BindJSON(c, &req) {
		return
	}

	hours, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, hours)
}

// @Summary      Delete special hours
// @Tags         admin,special-hours
// @Security     BearerAuth
// @Param        hoursID path int true "Special hours ID"
// @Success      204
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/special-hours/{hoursID} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := api.PathID(c, "hoursID", "special hours")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
