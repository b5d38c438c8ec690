package authControllers

import (
	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/api"
	"github.com/sugarsphere/sweetshop-api/services"
)

// POST /api/auth/register
func Register(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}

		resp, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, resp)
	}
}

// POST /api/auth/login
func Login(svc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.Fail(c, "Invalid input: "+err.Error())
			return
		}

		resp, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			api.FailErr(c, err)
			return
		}
		api.OK(c, resp)
	}
}
