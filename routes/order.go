package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/sugarsphere/sweetshop-api/controllers/order"
	"github.com/sugarsphere/sweetshop-api/middleware"
)

// SetupOrderRoutes registers checkout and order management endpoints.
func SetupOrderRoutes(r *gin.RouterGroup, deps Deps, authn gin.HandlerFunc) {
	orders := r.Group("/orders")
	orders.Use(authn)
	{
		orders.POST("/create-gateway-order", orderControllers.CreateGatewayOrder(deps.Orders))
		orders.POST("/verify-payment", orderControllers.VerifyPayment(deps.Orders))

		orders.GET("", orderControllers.GetUserOrders(deps.Orders))

		admin := orders.Group("/admin")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/all", orderControllers.GetAllOrders(deps.Orders))
			admin.POST("/:orderId/status", orderControllers.UpdateOrderStatus(deps.Orders))
			admin.GET("/revenue", orderControllers.GetRevenueStats(deps.Orders))
			admin.GET("/ws", orderControllers.OrderWebSocket)
		}

		orders.GET("/:orderId", orderControllers.GetOrderByID(deps.Orders))
		orders.POST("/:orderId/cancel", orderControllers.CancelOrder(deps.Orders))
	}
}
