// Package auction contains the handlers mounted under /api/auctions
package auction

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func AuctionFetch(c *gin.Context, d *internal.Deps) {
	auctionID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	auction, err := d.Listings.GetAuction(c.Request.Context(), auctionID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch auction")
		return
	}

	c.JSON(http.StatusOK, auction)
}
