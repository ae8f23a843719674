package calendar

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
	if errors.Is(err, ErrInvalidMonth) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: api.CodeValidation})
		return
	}
	logger.Error("calendar request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}

// queryInt returns def when the parameter is absent and ok=false when it is not a number.
func queryInt(c *gin.Context, key string, def int) (int, bool) {
	raw := c.Query(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}

// @Summary      Monthly calendar
// @Description  Sunday-first weeks with active events and special hours per day. Defaults to the current month.
// @Tags         calendar
// @Produce      json
// @Param        year  query int false "Year"
// @Param        month query int false "Month (1-12)"
// @Success      200 {object} calendar.Month
// @Failure      400 {object} api.ErrorResponse
// @Router       /calendar [get]
func (h *Handler) Month(c *gin.Context) {
	today := db.DateOf(h.now())

	year, okYear := queryInt(c, "year", today.Year)
	month, okMonth := queryInt(c, "month", int(today.Month))
	if !okYear || !okMonth {
		respondError(c, ErrInvalidMonth)
		return
	}

	m, err := h.service.Month(c.Request.Context(), year, month, today)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary      Gym information
// @Description  Current month calendar, upcoming events, special hours and regular opening hours.
// @Tags         calendar
// @Produce      json
// @Success      200 {object} calendar.Info
// @Router       /info [get]
func (h *Handler) Info(c *gin.Context) {
	info, err := h.service.Info(c.Request.Context(), db.DateOf(h.now()))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
