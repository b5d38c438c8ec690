package adminControllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/services"
)

// POST /api/admin/create-admin — open bootstrap endpoint for initial setup.
func CreateAdmin(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}
		if body.Username == "" || body.Email == "" || body.Password == "" {
			api.Fail(c, "Username, email, and password are required")
			return
		}

		admin, err := svc.CreateAdmin(c.Request.Context(), body.Username, body.Email, body.Password)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, admin)
	}
}

// POST /api/admin/promote-to-admin (admin)
func PromoteToAdmin(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Username string `json:"username" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			api.Fail(c, "Username is required")
			return
		}

		user, err := svc.PromoteToAdmin(c.Request.Context(), body.Username)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, user)
	}
}
