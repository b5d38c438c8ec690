package routes

import (
	"github.com/gin-gonic/gin"

	sweetControllers "github.com/sugarsphere/sweetshop-api/controllers/sweet"
	"github.com/sugarsphere/sweetshop-api/middleware"
)

// SetupSweetRoutes registers the catalog endpoints. Browsing is public;
// mutation is admin-only; purchase needs a logged-in user.
func SetupSweetRoutes(r *gin.RouterGroup, deps Deps, authn gin.HandlerFunc) {
	sweets := r.Group("/sweets")
	{
		sweets.GET("", sweetControllers.GetSweets(deps.Sweets))
		sweets.GET("/search", sweetControllers.SearchSweets(deps.Sweets))

		sweets.GET("/export-excel", authn, middleware.RequireAdmin(), sweetControllers.ExportSweetsToExcel(deps.Sweets))

		sweets.GET("/:id", sweetControllers.GetSweetByID(deps.Sweets))

		sweets.POST("", authn, middleware.RequireAdmin(), sweetControllers.CreateSweet(deps.Sweets))
		sweets.PUT("/:id", authn, middleware.RequireAdmin(), sweetControllers.UpdateSweet(deps.Sweets))
		sweets.DELETE("/:id", authn, middleware.RequireAdmin(), sweetControllers.DeleteSweet(deps.Sweets))
		sweets.POST("/:id/restock", authn, middleware.RequireAdmin(), sweetControllers.RestockSweet(deps.Sweets))

		sweets.POST("/:id/purchase", authn, sweetControllers.PurchaseSweet(deps.Sweets))
	}
}
