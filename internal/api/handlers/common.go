package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rockdove/aviation-backend/internal/utils"
)

// ErrorResponse is the error envelope shared by both public endpoints.
// Details is only populated on server-side failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	if status >= http.StatusInternalServerError {
		detail := utils.Detail(err)
		if detail == "" {
			detail = err.Error()
		}
		c.JSON(status, ErrorResponse{Error: "Internal Server Error", Details: detail})
		return
	}

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, ErrorResponse{Error: ae.Message})
		return
	}

	c.JSON(status, ErrorResponse{Error: http.StatusText(status)})
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}
