package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/sugarsphere/sweetshop-api/controllers/cart"
)

// SetupCartRoutes registers the cart endpoints; all operate on the caller's own cart.
func SetupCartRoutes(r *gin.RouterGroup, deps Deps, authn gin.HandlerFunc) {
	cart := r.Group("/cart")
	cart.Use(authn)
	{
		cart.GET("", cartControllers.GetCart(deps.Carts))
		cart.POST("/add", cartControllers.AddToCart(deps.Carts))
		cart.PUT("/update", cartControllers.UpdateCartItem(deps.Carts))
		cart.DELETE("/remove/:productId", cartControllers.RemoveFromCart(deps.Carts))
		cart.DELETE("/clear", cartControllers.ClearCart(deps.Carts))
	}
}
