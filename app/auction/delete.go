package auction

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func AuctionDelete(c *gin.Context, d *internal.Deps) {
	auctionID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	if err := d.Listings.DeleteAuction(c.Request.Context(), auctionID); err != nil {
		respond.Error(c, err, "Failed to delete auction")
		return
	}

	c.Status(http.StatusNoContent)
}
