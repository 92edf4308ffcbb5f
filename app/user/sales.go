package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// UserSaleCreate lists a new fixed price sale for the user in the path.
func UserSaleCreate(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.SaleInput
	if !respond.BindJSON(c, &data) {
		return
	}

	sale, err := d.Listings.CreateSale(c.Request.Context(), userID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to create sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}

func UserSales(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	sales, err := d.Listings.SalesForUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, sales)
}
