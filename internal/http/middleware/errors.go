// Package middleware — terminal error responder.
//
// Every failure raised during the pipeline (guards, validation, handlers,
// services) is attached to the Gin context and converted here, in a single
// place, into the uniform JSON error body:
//
//	{ "status": "fail"|"error", "message": "...", "stack": "..."? }
//
// The stack field is emitted only outside production. Besides typed apperr
// failures, the responder recognizes two database-native error classes
// (unique-constraint violation and server-unavailable) and the raw
// validator error shape, mirroring the upstream API's error handler.
package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bossnabeel/nexus-blog-app/internal/apperr"
	"github.com/bossnabeel/nexus-blog-app/internal/repo"
)

// ErrorResponder returns the terminal responder middleware. includeStack
// gates the stack field in response bodies (true outside production).
func ErrorResponder(includeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, tag, msg := classify(err)
		stack := debug.Stack()

		LoggerFrom(c).Error().
			Str("message", err.Error()).
			Str("url", c.Request.URL.RequestURI()).
			Str("method", c.Request.Method).
			Str("ip", c.ClientIP()).
			Bytes("stack", stack).
			Msg("request failed")

		if c.Writer.Written() {
			return
		}
		body := gin.H{"status": tag, "message": msg}
		if includeStack {
			body["stack"] = string(stack)
		}
		c.JSON(status, body)
	}
}

// classify maps a pipeline failure to (http status, status tag, message).
func classify(err error) (int, string, string) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae.Code, ae.Status, ae.Message
	}

	// A raw validator error escaping the schema wrapper.
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest, apperr.StatusFail, "Validation failed"
	}

	switch {
	case repo.IsDuplicate(err):
		return http.StatusBadRequest, apperr.StatusError, "Duplicate field value"
	case repo.IsUnavailable(err):
		return http.StatusBadRequest, apperr.StatusError, "DB server is not running"
	}

	return http.StatusInternalServerError, apperr.StatusError, "Server Internal Error"
}
