package attendance

import (
	"errors"
	"net/http"
	"strconv"

	"gymplace/internal/api"
	"gymplace/internal/auth"
	"gymplace/internal/logger"
	"gymplace/internal/member"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, member.ErrNoMemberProfile):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "No member profile found. Please contact support.", Code: api.CodeMemberProfileMissing})
	case errors.Is(err, ErrNoOpenCheckIn):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "You are not checked in", Code: api.CodeNotFound})
	default:
		logger.Error("attendance request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}
}

// @Summary      Check in
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} attendance.CheckInResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	a, err := h.service.CheckIn(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CheckInResponse{
		Message:    "Check-in successful! Welcome to the gym!",
		Attendance: *a,
	})
}

// @Summary      Check out
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} attendance.Attendance
// @Failure      404 {object} api.ErrorResponse
// @Router       /check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	a, err := h.service.CheckOut(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// @Summary      My recent check-ins
// @Tags         attendance
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Max records (default 10)"
// @Success      200 {array} attendance.Attendance
// @Router       /check-ins [get]
func (h *Handler) ListMine(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultRecent)))

	records, err := h.service.RecentMine(c.Request.Context(), p, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
