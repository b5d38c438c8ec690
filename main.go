package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sugarsphere/sweetshop-api/config"
	"github.com/sugarsphere/sweetshop-api/payment"
	"github.com/sugarsphere/sweetshop-api/repository"
	"github.com/sugarsphere/sweetshop-api/routes"
	"github.com/sugarsphere/sweetshop-api/services"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	db, err := repository.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("❌ Failed to create indexes: %v", err)
	}

	// Repositories
	sweetRepo := repository.NewMongoSweetRepository(db)
	cartRepo := repository.NewMongoCartRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	// One gateway client for the whole process, built up front.
	gateway := payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// Services
	sweetSvc := services.NewSweetService(sweetRepo)
	cartSvc := services.NewCartService(cartRepo, sweetRepo)
	orderSvc := services.NewOrderService(orderRepo, cartRepo, sweetRepo, gateway)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret)

	// Seed the admin account on first boot.
	if err := authSvc.EnsureAdminUser(ctx, cfg.AdminUsername, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("❌ Failed to seed admin user: %v", err)
	}

	// Gin setup
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, routes.Deps{
		Sweets:    sweetSvc,
		Carts:     cartSvc,
		Orders:    orderSvc,
		Auth:      authSvc,
		Users:     userRepo,
		JWTSecret: cfg.JWTSecret,
	})

	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
