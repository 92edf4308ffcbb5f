// Package root contains handlers that don't belong to any resource
package root

import (
	"context"
	"net/http"
	"time"

	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Health reports whether the store answers a ping within two seconds.
func Health(c *gin.Context, d *internal.Deps) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		zap.L().Error("Health check failed", zap.Error(err), zap.String("requestID", c.GetString("requestID")))

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":    "unavailable",
			"requestID": c.GetString("requestID"),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
