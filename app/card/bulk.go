package card

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

const maxBulkCards = 1000

// CardBulkCreate stores every card of the array it can and reports the rest
// by index. It answers 201 when all of them were created and 207 otherwise.
func CardBulkCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.GetString("requestID")

	var data []validators.CardInput
	if !respond.BindJSON(c, &data) {
		return
	}

	if len(data) == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "No cards provided",
			"requestID": requestID,
		})
		return
	}

	if len(data) > maxBulkCards {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Can't create more than 1000 cards at once",
			"requestID": requestID,
		})
		return
	}

	res := d.Catalog.BulkCreate(c.Request.Context(), data)

	code := http.StatusCreated
	if len(res.Failed) > 0 {
		code = http.StatusMultiStatus
	}

	c.JSON(code, res)
}
