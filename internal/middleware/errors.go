package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/internal/domain/apperrors"
	"github.com/guttosm/salespulse/internal/domain/dto"
)

// ErrorHandler renders the last error attached with c.Error as a
// dto.ErrorResponse, with the status chosen by apperrors.StatusCode.
// Nothing is written if the handler already produced a response.
//
// Usage:
//
//	router.Use(middleware.ErrorHandler)
//	...
//	if err != nil {
//	    _ = c.Error(err)
//	    return
//	}
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	err := c.Errors.Last().Err
	status := apperrors.StatusCode(err)
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(messageFor(status), err))
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, msg string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(msg, err))
}

func messageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "invalid request parameters"
	case http.StatusBadGateway:
		return "products API unavailable"
	default:
		return "internal server error"
	}
}
