package auction

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

func AuctionUpdate(c *gin.Context, d *internal.Deps) {
	auctionID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.AuctionInput
	if !respond.BindJSON(c, &data) {
		return
	}

	auction, err := d.Listings.UpdateAuction(c.Request.Context(), auctionID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to update auction")
		return
	}

	c.JSON(http.StatusOK, auction)
}
