package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"
	"marketofmanycards/market-api/pkg/validators"

	"github.com/gin-gonic/gin"
)

// UserCreate registers a new user. The body takes full_name or its older
// alias nickname.
func UserCreate(c *gin.Context, d *internal.Deps) {
	var data validators.UserInput
	if !respond.BindJSON(c, &data) {
		return
	}

	user, err := d.Users.Create(c.Request.Context(), &data)
	if err != nil {
		respond.Error(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusOK, user)
}
