package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/linskybing/formkit/pkg/apperror"
	"github.com/linskybing/formkit/pkg/logger"
	"github.com/linskybing/formkit/pkg/response"
)

const (
	ValidationFailedMessage = "Validation failed. Please check your input."
	InternalErrorMessage    = "Internal server error"
)

// ErrorHandler turns the last error attached with c.Error into a
// {"status","message"} body. Handlers that already wrote a response are left
// alone.
func ErrorHandler() gin.HandlerFunc {
	log := logger.WithComponent("errors")
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		status, message := Resolve(last)

		entry := log.WithError(last.Err).WithField("path", c.Request.URL.Path)
		if id, ok := c.Get(RequestIDKey); ok {
			entry = entry.WithField("request_id", id)
		}
		if status >= http.StatusInternalServerError {
			entry.Error(message)
		} else {
			entry.Debug(message)
		}

		c.JSON(status, response.ErrorResponse{Status: status, Message: message})
	}
}

// Resolve maps an attached error to a status code and client-facing message.
// Internal details never reach the client.
func Resolve(e *gin.Error) (int, string) {
	if e.IsType(gin.ErrorTypeBind) {
		return http.StatusBadRequest, ValidationFailedMessage
	}
	var verrs validator.ValidationErrors
	if errors.As(e.Err, &verrs) {
		return http.StatusBadRequest, ValidationFailedMessage
	}
	if appErr, ok := apperror.As(e.Err); ok {
		return appErr.Status, appErr.Message
	}
	return http.StatusInternalServerError, InternalErrorMessage
}

// NotFound answers unknown routes in the same error shape.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, response.ErrorResponse{Status: http.StatusNotFound, Message: "Not found"})
}

// Recovery turns a handler panic into a 500 in the usual error shape.
func Recovery() gin.HandlerFunc {
	log := logger.WithComponent("recovery")
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.WithField("path", c.Request.URL.Path).Errorf("panic: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: InternalErrorMessage,
		})
	})
}
