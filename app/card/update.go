package card

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// CardUpdate only replaces the fields present in the body.
func CardUpdate(c *gin.Context, d *internal.Deps) {
	cardID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.CardPatch
	if !respond.BindJSON(c, &data) {
		return
	}

	card, err := d.Catalog.Update(c.Request.Context(), cardID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to update card")
		return
	}

	c.JSON(http.StatusOK, card)
}
