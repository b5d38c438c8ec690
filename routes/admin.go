package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/sugarsphere/sweetshop-api/controllers/admin"
	"github.com/sugarsphere/sweetshop-api/middleware"
)

// SetupAdminRoutes registers user management endpoints. create-admin stays
// open for initial setup; promotion requires an existing admin.
func SetupAdminRoutes(r *gin.RouterGroup, deps Deps, authn gin.HandlerFunc) {
	adminGroup := r.Group("/admin")
	{
		adminGroup.POST("/create-admin", adminControllers.CreateAdmin(deps.Auth))
		adminGroup.POST("/promote-to-admin", authn, middleware.RequireAdmin(), adminControllers.PromoteToAdmin(deps.Auth))
	}
}
