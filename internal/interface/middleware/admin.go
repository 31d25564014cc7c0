package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webcraft-academy/elearn-api/internal/domain/entity"
	"github.com/webcraft-academy/elearn-api/pkg/response"
)

// RequireAdmin gates a route on the admin role carried in the session
// token. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxUserRoleKey) != entity.RoleAdmin {
			response.Error[any](c, http.StatusForbidden, "admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
