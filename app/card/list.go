// Package card contains the handlers mounted under /api/cards
package card

import (
	"net/http"
	"strconv"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

// CardList returns the catalog. Without a limit the whole catalog is
// returned, pages start at 1.
func CardList(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Page is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Limit is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	cards, err := d.Catalog.List(c.Request.Context(), page, limit)
	if err != nil {
		respond.Error(c, err, "Failed to list cards")
		return
	}

	c.JSON(http.StatusOK, cards)
}
