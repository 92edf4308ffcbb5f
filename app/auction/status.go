package auction

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// AuctionStatus closes or cancels an open auction.
func AuctionStatus(c *gin.Context, d *internal.Deps) {
	auctionID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.StatusInput
	if !respond.BindJSON(c, &data) {
		return
	}

	auction, err := d.Listings.SetAuctionStatus(c.Request.Context(), auctionID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to change auction status")
		return
	}

	c.JSON(http.StatusOK, auction)
}
