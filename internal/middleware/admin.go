package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"jarin-io/api/pkg/services"
	"jarin-io/api/pkg/util"
)

// RequirePermission restricts a route group to users holding the named
// permission. Permission sets live on the user record, so the check reads
// the current user rather than trusting the token.
func RequirePermission(userService services.UserService, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := CurrentSession(c)

		userId, err := primitive.ObjectIDFromHex(session.UserId)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		currentUser, err := userService.GetUserByID(c.Request.Context(), userId)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		for _, granted := range currentUser.Permissions {
			if granted == permission {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "insufficient permissions: " + permission + " required",
		})
		c.Abort()
	}
}
