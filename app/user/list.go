// Package user contains the handlers mounted under /api/users
package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func UserList(c *gin.Context, d *internal.Deps) {
	users, err := d.Users.List(c.Request.Context())
	if err != nil {
		respond.Error(c, err, "Failed to list users")
		return
	}

	c.JSON(http.StatusOK, users)
}
