package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/employee-records-api/internal/domain/apperror"
	"github.com/oksasatya/employee-records-api/pkg/response"
)

const (
	internalErrorMessage = "Internal server error"
	internalErrorDetail  = "An unexpected error occurred"
)

// ErrorHandler translates the last error a handler attached with c.Error into the envelope.
// Unclassified errors answer 500 with a generic body; the full chain is only logged.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		status, message, details := translate(err)

		entry := logger.WithFields(logrus.Fields{
			"url":        c.Request.URL.Path,
			"method":     c.Request.Method,
			"params":     paramsMap(c.Params),
			"query":      c.Request.URL.RawQuery,
			"status":     status,
			"request_id": c.GetString(RequestIDKey),
		}).WithError(err)
		if status >= http.StatusInternalServerError {
			entry.Error("Global exception caught")
		} else {
			entry.Warn("Global exception caught")
		}

		response.Error(c, status, message, details)
	}
}

func translate(err error) (int, string, []string) {
	var (
		ve *apperror.ValidationError
		nf *apperror.NotFoundError
		br *apperror.BadRequestError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Message, ve.Errors
	case errors.As(err, &nf):
		return http.StatusNotFound, nf.Message, nil
	case errors.As(err, &br):
		return http.StatusBadRequest, br.Message, nil
	default:
		return http.StatusInternalServerError, internalErrorMessage, []string{internalErrorDetail}
	}
}

func paramsMap(ps gin.Params) map[string]string {
	out := make(map[string]string, len(ps))
	for _, p := range ps {
		out[p.Key] = p.Value
	}
	return out
}

// Recovery answers panics with the same 500 envelope as unclassified errors.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"url":        c.Request.URL.Path,
			"method":     c.Request.Method,
			"panic":      recovered,
			"request_id": c.GetString(RequestIDKey),
		}).Error("panic recovered")
		response.Error(c, http.StatusInternalServerError, internalErrorMessage, []string{internalErrorDetail})
		c.Abort()
	})
}

// NotFound answers unknown routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	}
}

// MethodNotAllowed answers known paths called with the wrong method.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed", nil)
	}
}
