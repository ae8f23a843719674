package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID reads a positive integer path parameter, writing a 400 response when it is malformed.
func PathID(c *gin.Context, param, label string) (int, bool) {
	id, err := strconv.Atoi(c.Param(param))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + label + " ID", Code: CodeValidation})
		return 0, false
	}
	return id, true
}
