package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func UserFetch(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	user, err := d.Users.Get(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err, "Failed to fetch user")
		return
	}

	c.JSON(http.StatusOK, user)
}
