package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sugarsphere/sweetshop-api/middleware"
	"github.com/sugarsphere/sweetshop-api/repository"
	"github.com/sugarsphere/sweetshop-api/services"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Sweets *services.SweetService
	Carts  *services.CartService
	Orders *services.OrderService
	Auth   *services.AuthService

	Users     repository.UserRepository
	JWTSecret string
}

// SetupRoutes is the single entry-point that wires up every route group under /api.
func SetupRoutes(r *gin.Engine, deps Deps) {
	apiGroup := r.Group("/api")

	authn := middleware.ValidateToken(deps.JWTSecret, deps.Users)

	SetupAuthRoutes(apiGroup, deps)
	SetupSweetRoutes(apiGroup, deps, authn)
	SetupCartRoutes(apiGroup, deps, authn)
	SetupOrderRoutes(apiGroup, deps, authn)
	SetupAdminRoutes(apiGroup, deps, authn)
}
