// Package respond holds the pieces every handler shares: reading ids and
// bodies from the request and turning service errors into JSON responses.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"marketofmanycards/market-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error answers with the status that matches the error kind. Internal errors
// are logged with msg and hidden behind a generic message.
func Error(c *gin.Context, err error, msg string) {
	requestID := c.GetString("requestID")
	code := apperr.Status(err)

	switch {
	case code == http.StatusInternalServerError:
		zap.L().Error(msg, zap.Error(err), zap.String("requestID", requestID))
	case errors.Is(err, apperr.ErrValidation):
		zap.L().Debug("Rejected request", zap.Error(err), zap.String("requestID", requestID))
	}

	c.AbortWithStatusJSON(code, gin.H{
		"error":     apperr.Message(err),
		"requestID": requestID,
	})
}

// ParamID reads a positive integer path parameter. It answers 400 and returns
// false when the value is malformed.
func ParamID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid " + name + " provided",
			"requestID": c.GetString("requestID"),
		})
		return 0, false
	}

	return uint(id), true
}

// BindJSON decodes the request body into dst. It answers 413 when the body
// limit was hit, 400 for anything else that isn't valid JSON, and returns
// false in both cases.
func BindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	requestID := c.GetString("requestID")

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"error":     "Request body size exceeds limit",
			"requestID": requestID,
		})
		return false
	}

	zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"error":     "Malformed or invalid JSON request body",
		"requestID": requestID,
	})
	return false
}
