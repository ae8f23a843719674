package event

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
	case errors.Is(err, ErrEventNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Event not found", Code: api.CodeNotFound})
	case errors.Is(err, ErrInvalidTimeRange), errors.Is(err, ErrInvalidType):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error(), Code: api.CodeValidation})
	default:
		logger.Error("event request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}
}

// @Summary      Upcoming events
// @Tags         events
// @Produce      json
// @Param        limit query int false "Max events (default 10)"
// @Success      200 {array} event.Event
// @Router       /events [get]
func (h *Handler) Upcoming(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := h.service.Upcoming(c.Request.Context(), db.DateOf(h.now()), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// @Summary      Create an event
// @Tags         admin,events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body event.EventRequest true "Event"
// @Success      201 {object} event.Event
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/events [post]
func (h *Handler) Create(c *gin.Context) {
	var req EventRequest
	if !api.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// @Summary      Update an event
// @Tags         admin,events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        eventID path int true "Event ID"
// @Param        request body event.EventRequest true "Event"
// @Success      200 {object} event.Event
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/events/{eventID} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := api.PathID(c, "eventID", "event")
	if !ok {
		return
	}

	var req EventRequest
	if !api.BindJSON(c, &req) {
		return
	}

	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// @Summary      Activate an event
// @Tags         admin,events
// @Security     BearerAuth
// @Param        eventID path int true "Event ID"
// @Success      200 {object} api.MessageResponse
// @Router       /admin/events/{eventID}/activate [post]
func (h *Handler) Activate(c *gin.Context) {
	id, ok := api.PathID(c, "eventID", "event")
	if !ok {
		return
	}
	if err := h.service.Activate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Event activated"})
}

// @Summary      Deactivate an event
// @Tags         admin,events
// @Security     BearerAuth
// @Param        eventID path int true "Event ID"
// @Success      200 {object} api.MessageResponse
// @Router       /admin/events/{eventID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := api.PathID(c, "eventID", "event")
	if !ok {
		return
	}
	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, api.MessageResponse{Message: "Event deactivated"})
}
