package user

import (
	"net/http"

	"marketofmanycards/market-api/app/respond"
	"marketofmanycards/market-api/internal"

	"github.com/gin-gonic/gin"
)

func UserDelete(c *gin.Context, d *internal.Deps) {
	userID, ok := respond.ParamID(c, "id")
	if !ok {
		return
	}

	if err := d.Users.Delete(c.Request.Context(), userID); err != nil {
		respond.Error(c, err, "Failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted",
	})
}
