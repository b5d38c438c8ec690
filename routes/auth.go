package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/sugarsphere/sweetshop-api/controllers/auth"
)

// SetupAuthRoutes registers the public register/login endpoints.
func SetupAuthRoutes(r *gin.RouterGroup, deps Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authControllers.Register(deps.Auth))
		authGroup.POST("/login", authControllers.Login(deps.Auth))
	}
}
