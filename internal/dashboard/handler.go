package dashboard

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
	if errors.Is(err, member.ErrMemberNotFound) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found", Code: api.CodeNotFound})
		return
	}
	logger.Error("dashboard request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
}

// @Summary      Home page statistics
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dashboard.HomeStats
// @Router       /stats [get]
func (h *Handler) Home(c *gin.Context) {
	stats, err := h.service.Home(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary      Member dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dashboard.Dashboard
// @Failure      401 {object} api.ErrorResponse
// @Router       /dashboard [get]
func (h *Handler) Dashboard(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "User not authenticated"})
		return
	}

	d, err := h.service.Dashboard(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary      Member detail
// @Description  Member profile with active registrations and the last 10 check-ins.
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        memberID path int true "Member ID"
// @Success      200 {object} dashboard.MemberDetail
// @Failure      404 {object} api.ErrorResponse
// @Router       /members/{memberID} [get]
func (h *Handler) MemberDetail(c *gin.Context) {
	id, ok := api.PathID(c, "memberID", "member")
	if !ok {
		return
	}

	detail, err := h.service.MemberDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}
