package registration

import (
	"errors"
	"net/http"

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
	case errors.Is(err, ErrClassFull):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Sorry, this class is full.", Code: api.CodeClassFull})
	case errors.Is(err, ErrClassNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Class not found", Code: api.CodeNotFound})
	case errors.Is(err, ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Registration not found", Code: api.CodeNotFound})
	case errors.Is(err, ErrDuplicateRegistration):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "You are already registered for this class.", Code: api.CodeDuplicate})
	case errors.Is(err, member.ErrNoMemberProfile):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "No member profile found. Please contact support.", Code: api.CodeMemberProfileMissing})
	default:
		logger.Error("registration request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}
}

func principal(c *gin.Context) (auth.Principal, bool) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
	}
	return p, ok
}

func registerMessage(outcome Outcome, className string) string {
	switch outcome {
	case OutcomeAlreadyRegistered:
		return "You are already registered for this class."
	case OutcomeReregistered:
		return "Successfully re-registered for " + className + "!"
	default:
		return "Successfully registered for " + className + "!"
	}
}

// @Summary      Register for a class
// @Description  Registers the caller's member profile. A cancelled registration is re-activated.
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Success      201 {object} registration.RegisterResponse
// @Success      200 {object} registration.RegisterResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /classes/{classID}/register [post]
func (h *Handler) Register(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	classID, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}

	reg, outcome, err := h.service.Register(c.Request.Context(), p, classID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if outcome == OutcomeRegistered {
		status = http.StatusCreated
	}
	c.JSON(status, RegisterResponse{
		Outcome:      outcome,
		Message:      registerMessage(outcome, reg.ClassName),
		Registration: *reg,
	})
}

// @Summary      Cancel my class registration
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Success      200 {object} registration.Registration
// @Failure      404 {object} api.ErrorResponse
// @Router       /classes/{classID}/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	classID, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}

	reg, err := h.service.Cancel(c.Request.Context(), p, classID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// @Summary      List my registrations
// @Tags         registrations
// @Produce      json
// @Security     BearerAuth
// @Param        active query bool false "Only active registrations"
// @Success      200 {array} registration.Registration
// @Router       /registrations [get]
func (h *Handler) ListMine(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	regs, err := h.service.ListMine(c.Request.Context(), p, c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// @Summary      List registrations for a class
// @Tags         admin,registrations
// @Produce      json
// @Security     BearerAuth
// @Param        classID path int true "Class ID"
// @Param        active query bool false "Only active registrations"
// @Success      200 {array} registration.Registration
// @Router       /admin/classes/{classID}/registrations [get]
func (h *Handler) ListForClass(c *gin.Context) {
	classID, ok := api.PathID(c, "classID", "class")
	if !ok {
		return
	}

	regs, err := h.service.ListForClass(c.Request.Context(), classID, c.Query("active") == "true")
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regs)
}

// @Summary      Cancel a registration
// @Tags         admin,registrations
// @Produce      json
// @Security     BearerAuth
// @Param        registrationID path int true "Registration ID"
// @Success      200 {object} registration.Registration
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/registrations/{registrationID}/cancel [post]
func (h *Handler) AdminCancel(c *gin.Context) {
	id, ok := api.PathID(c, "registrationID", "registration")
	if !ok {
		return
	}

	reg, err := h.service.AdminCancel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}

// @Summary      Mark attendance for a registration
// @Tags         admin,registrations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        registrationID path int true "Registration ID"
// @Param        request body registration.AttendedRequest true "Attended flag"
// @Success      200 {object} registration.Registration
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/registrations/{registrationID}/attended [put]
func (h *Handler) MarkAttended(c *gin.Context) {
	id, ok := api.PathID(c, "registrationID", "registration")
	if !ok {
		return
	}

	var req AttendedRequest
	if !api.BindJSON(c, &req) {
		return
	}

	reg, err := h.service.MarkAttended(c.Request.Context(), id, *req.Attended)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reg)
}
