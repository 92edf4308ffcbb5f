package sale

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func SaleDelete(c *gin.Context, d *internal.Deps) {
	saleID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	if err := d.Listings.DeleteSale(c.Request.Context(), saleID); err != nil {
		respond.Error(c, err, "Failed to delete sale")
		return
	}

	c.Status(http.StatusNoContent)
}
