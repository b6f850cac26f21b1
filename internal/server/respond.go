package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"hexago/internal/domain"
	"hexago/internal/logger"
)

// errorBody is the JSON shape of every error response. The request id lets
// clients correlate a response with the server-side log entry.
type errorBody struct {
	Detail    any    `json:"detail"`
	RequestID string `json:"request_id"`
}

func abortWithDetail(c *gin.Context, status int, detail any) {
	c.AbortWithStatusJSON(status, errorBody{
		Detail:    detail,
		RequestID: logger.RequestID(c),
	})
}

// notFound renders a 404 with a domain-specific message.
func notFound(c *gin.Context, detail string) {
	abortWithDetail(c, http.StatusNotFound, detail)
}

// unauthenticated renders a 401.
func unauthenticated(c *gin.Context, detail string) {
	abortWithDetail(c, http.StatusUnauthorized, detail)
}

// validationFailed renders a 422 with field-level detail.
func validationFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		abortWithDetail(c, http.StatusUnprocessableEntity, fields)
		return
	}
	abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
}

// failure maps an unexpected error to a response: upstream failures keep the
// third-party status, everything else becomes a generic 500 with full detail
// only in the server-side log.
func failure(c *gin.Context, err error) {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.Log.Warn("upstream failure",
			zap.String("request_id", logger.RequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("upstream_status", upstreamErr.Status),
		)
		abortWithDetail(c, upstreamErr.Status, "Upstream request failed")
		return
	}

	logger.Log.Error("unhandled error",
		zap.String("request_id", logger.RequestID(c)),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	abortWithDetail(c, http.StatusInternalServerError, "Internal server error")
}
