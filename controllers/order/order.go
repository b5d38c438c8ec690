package orderControllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/middleware"
	"github.com/sugarsphere/sweetshop-api/services"
)

// POST /api/orders/create-gateway-order
func CreateGatewayOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Amount float64 `json:"amount"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}

		gatewayOrder, err := svc.CreateGatewayOrder(c.Request.Context(), body.Amount)
		if err != nil {
			api.Fail(c, "Failed to create gateway order: "+err.Error())
			return
		}
		api.OK(c, gatewayOrder)
	}
}

// POST /api/orders/verify-payment
func VerifyPayment(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var req services.PaymentVerificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}

		order, err := svc.VerifyAndCreateOrder(c.Request.Context(), user, req)
		if err != nil {
			api.FailErr(c, err)
			return
		}

		broadcastNewOrder(*order)
		api.OK(c, order)
	}
}

// GET /api/orders
func GetUserOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		orders, err := svc.GetUserOrders(c.Request.Context(), user)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, orders)
	}
}

// GET /api/orders/:orderId
func GetOrderByID(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		order, err := svc.GetOrderByID(c.Request.Context(), c.Param("orderId"), user)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, order)
	}
}

// POST /api/orders/:orderId/cancel
func CancelOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		order, err := svc.CancelOrder(c.Request.Context(), c.Param("orderId"), user)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, order)
	}
}

// GET /api/orders/admin/all (admin)
func GetAllOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := svc.GetAllOrders(c.Request.Context())
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, orders)
	}
}

// POST /api/orders/admin/:orderId/status (admin)
func UpdateOrderStatus(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status string `json:"status" binding:"required"`
			Note   string `json:"note"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}

		order, err := svc.UpdateOrderStatus(c.Request.Context(), c.Param("orderId"), body.Status, body.Note)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, order)
	}
}

// GET /api/orders/admin/revenue (admin)
func GetRevenueStats(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := svc.GetRevenueStats(c.Request.Context())
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, stats)
	}
}
