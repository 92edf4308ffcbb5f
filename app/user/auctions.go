package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

func UserAuctionCreate(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.AuctionInput
	if !respond.BindJSON(c, &data) {
		return
	}

	auction, err := d.Listings.CreateAuction(c.Request.Context(), userID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to create auction")
		return
	}

	c.JSON(http.StatusOK, auction)
}

func UserAuctions(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	auctions, err := d.Listings.AuctionsForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err, "Failed to list auctions")
		return
	}

	c.JSON(http.StatusOK, auctions)
}
