package sale

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// SaleUpdate replaces price, description and quantity of a pending sale.
func SaleUpdate(c *gin.Context, d *internal.Deps) {
	saleID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.SaleInput
	if !respond.BindJSON(c, &data) {
		return
	}

	sale, err := d.Listings.UpdateSale(c.Request.Context(), saleID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to update sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}
