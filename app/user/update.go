package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

func UserUpdate(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	var data validators.UserInput
	if !respond.BindJSON(c, &data) {
		return
	}

	user, err := d.Users.Update(c.Request.Context(), userID, &data)
	if err != nil {
		respond.Error(c, err, "Failed to update user")
		return
	}

	c.JSON(http.StatusOK, user)
}
