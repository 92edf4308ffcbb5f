package card

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func CardFetch(c *gin.Context, d *internal.Deps) {
	cardID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	card, err := d.Catalog.Get(c.Request.Context(), cardID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch card")
		return
	}

	c.JSON(http.StatusOK, card)
}
