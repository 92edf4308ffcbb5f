package card

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

func CardCreate(c *gin.Context, d *internal.Deps) {
	var data validators.CardInput
	if !respond.BindJSON(c, &data) {
		return
	}

	card, err := d.Catalog.Create(c.Request.Context(), &data)
	if err != nil {
		respond.Error(c, err, "Failed to create card")
		return
	}

	c.JSON(http.StatusCreated, card)
}
