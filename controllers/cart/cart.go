package cartControllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/middleware"
	"github.com/sugarsphere/sweetshop-api/services"
)

// Frontends send productId either as a JSON number (legacy numeric id) or as a
// string (Mongo _id); both are normalised to a string here.
type cartItemInput struct {
	ProductID interface{} `json:"productId"`
	Quantity  *int        `json:"quantity"`
}

func (in cartItemInput) productID() (string, error) {
	switch v := in.ProductID.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("product ID is required")
		}
		return v, nil
	case float64:
		return strconv.Itoa(int(v)), nil
	default:
		return "", fmt.Errorf("product ID is required")
	}
}

// GET /api/cart
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		cart, err := svc.GetOrCreate(c.Request.Context(), user.ID.Hex())
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, cart)
	}
}

// POST /api/cart/add
func AddToCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		productID, err := input.productID()
		if err != nil {
			api.FailErr(c, err)
			return
		}
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}

		cart, err := svc.AddItem(c.Request.Context(), user.ID.Hex(), productID, quantity)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, cart)
	}
}

// PUT /api/cart/update
func UpdateCartItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)

		var input cartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		productID, err := input.productID()
		if err != nil {
			api.FailErr(c, err)
			return
		}
		if input.Quantity == nil {
			api.Fail(c, "quantity is required")
			return
		}

		cart, err := svc.UpdateItem(c.Request.Context(), user.ID.Hex(), productID, *input.Quantity)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, cart)
	}
}

// DELETE /api/cart/remove/:productId
func RemoveFromCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		cart, err := svc.RemoveItem(c.Request.Context(), user.ID.Hex(), c.Param("productId"))
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, cart)
	}
}

// DELETE /api/cart/clear
func ClearCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c)
		cart, err := svc.Clear(c.Request.Context(), user.ID.Hex())
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, cart)
	}
}
