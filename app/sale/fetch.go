// Package sale contains the handlers mounted under /api/sales
package sale

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func SaleFetch(c *gin.Context, d *internal.Deps) {
	saleID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	sale, err := d.Listings.GetSale(c.Request.Context(), saleID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch sale")
		return
	}

	c.JSON(http.StatusOK, sale)
}
