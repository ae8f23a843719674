package member

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
	switch {
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found", Code: api.CodeNotFound})
	case errors.Is(err, ErrEmailTaken):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "This email is already registered", Code: api.CodeDuplicate})
	case errors.Is(err, ErrInvalidTier):
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid membership tier", Code: api.CodeValidation})
	case errors.Is(err, ErrNoMemberProfile):
		c.JSON(http.StatusConflict, api.ErrorResponse{Error: "No member profile found. Please contact support.", Code: api.CodeMemberProfileMissing})
	default:
		logger.Error("member request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
	}
}

func memberIDParam(c *gin.Context) (int, bool) {
	return api.PathID(c, "memberID", "member")
}

// @Summary      Sign up as a member
// @Description  Creates a membership without a login account.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body member.SignupRequest true "Member details"
// @Success      201 {object} member.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /members/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      Create a member
// @Tags         admin,members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.SignupRequest true "Member details"
// @Success      201 {object} member.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /admin/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req SignupRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, m)
}

// @Summary      List active members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} member.Member
// @Router       /members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// @Summary      Get my member profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} member.Member
// @Failure      409 {object} api.ErrorResponse
// @Router       /profile [get]
func (h *Handler) GetProfile(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	m, err := h.service.ForPrincipal(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Update my member profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body member.ProfileUpdateRequest true "Profile"
// @Success      200 {object} member.Member
// @Failure      400 {object} api.ValidationErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Router       /profile [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	var req ProfileUpdateRequest
	if !api.BindJSON(c, &req) {
		return
	}

	m, err := h.service.UpdateProfile(c.Request.Context(), p, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, m)
}

// @Summary      Deactivate a member
// @Tags         admin,members
// @Security     BearerAuth
// @Param        memberID path int true "Member ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/members/{memberID}/deactivate [post]
func (h *Handler) Deactivate(c *gin.Context) {
	id, ok := memberIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deactivated"})
}

// @Summary      Reactivate a member
// @Tags         admin,members
// @Security     BearerAuth
// @Param        memberID path int true "Member ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /admin/members/{memberID}/reactivate [post]
func (h *Handler) Reactivate(c *gin.Context) {
	id, ok := memberIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Reactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member reactivated"})
}
