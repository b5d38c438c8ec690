package sweetControllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/services"
)

// GET /api/sweets
func GetSweets(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sweets, err := svc.List(c.Request.Context())
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweets)
	}
}

// GET /api/sweets/:id
func GetSweetByID(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sweet, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweet)
	}
}

// GET /api/sweets/search?searchTerm=&category=&minPrice=&maxPrice=
func SearchSweets(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("searchTerm")
		category := c.Query("category")

		var minPrice, maxPrice *float64
		if v := c.Query("minPrice"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				minPrice = &f
			}
		}
		if v := c.Query("maxPrice"); v != "" {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				maxPrice = &f
			}
		}

		sweets, err := svc.Search(c.Request.Context(), term, category, minPrice, maxPrice)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweets)
	}
}

// POST /api/sweets (admin)
func CreateSweet(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.SweetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		sweet, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweet)
	}
}

// PUT /api/sweets/:id (admin)
func UpdateSweet(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.SweetInput
		if err := c.ShouldBindJSON(&input); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		sweet, err := svc.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweet)
	}
}

// DELETE /api/sweets/:id (admin)
func DeleteSweet(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, gin.H{"message": "Sweet deleted"})
	}
}

// POST /api/sweets/:id/purchase (user)
func PurchaseSweet(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sweet, err := svc.Purchase(c.Request.Context(), c.Param("id"))
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweet)
	}
}

// POST /api/sweets/:id/restock (admin)
func RestockSweet(svc *services.SweetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		sweet, err := svc.Restock(c.Request.Context(), c.Param("id"), body.Quantity)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, sweet)
	}
}
