package sale

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

func SaleStatus(c *gin.Context, d *internal.Deps) {
	saleID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.StatusInput
	if !respond.BindJSON(c, &data) {
		return
	}

	sale, err := d.Listings.SetSaleStatus(c.Request.Context(), saleID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to change sale status")
		return
	}

	c.JSON(http.StatusOK, sale)
}
