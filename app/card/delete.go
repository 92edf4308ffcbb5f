package card

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func CardDelete(c *gin.Context, d *internal.Deps) {
	cardID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	if err := d.Catalog.Delete(c.Request.Context(), cardID); err != nil {
		respond.Error(c, err, "Failed to delete card")
		return
	}

	c.Status(http.StatusNoContent)
}
