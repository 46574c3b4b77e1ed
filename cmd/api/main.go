package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthbridge-api/internal/config"
	"healthbridge-api/internal/handlers"
	"healthbridge-api/internal/middleware"
	"healthbridge-api/internal/notify"
	"healthbridge-api/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	cfg := config.Load()
	log.Printf("MONGO_DATABASE: %s", cfg.MongoDatabase)
	log.Printf("API_PORT: %s", cfg.Port)
	if os.Getenv("JWT_SECRET") != "" {
		log.Println("JWT_SECRET is SET.")
	} else {
		log.Println("JWT_SECRET is NOT SET.")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	st := store.NewMongo(db)
	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// --- Initialize Services ---
	mailer := notify.NewSMTPMailer(cfg)
	sms := notify.NewTwilioSender(cfg)

	h := handlers.NewHandler(st, mailer, sms, cfg)

	// --- Gin Router ---
	r := gin.Default()

	// --- Middleware ---
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	// --- Routes ---
	authRoutes := r.Group("/api/auth")
	{
		authRoutes.POST("/superadmin/register", h.RegisterSuperAdmin)
		authRoutes.POST("/superadmin/login", h.LoginSuperAdmin)
		authRoutes.POST("/validate-email", h.ValidateEmail)
		authRoutes.POST("/validate-mobile", h.ValidateMobile)
	}

	adminRoutes := r.Group("/api/auth")
	adminRoutes.Use(middleware.RequireAdmin(st)) // resolve the super admin on every call
	{
		adminRoutes.GET("/superadmin/users", h.Users)
		adminRoutes.POST("/registered-businessOwner", h.RegisteredBusinessOwner)
		adminRoutes.POST("/superadmin/invite-business-owner", h.InviteBusinessOwner)
		adminRoutes.POST("/add-phlebotomist", h.AddPhlebotomist)
		adminRoutes.GET("/list-phlebotomists/:businessOwnerId", h.ListPhlebotomists)
		adminRoutes.DELETE("/remove-phlebotomist/:businessOwnerId/:phlebotomistId", h.RemovePhlebotomist)
	}

	// Service routes only check token validity, not the admin record.
	serviceRoutes := r.Group("/api/services")
	serviceRoutes.Use(middleware.RequireToken())
	{
		serviceRoutes.POST("", h.CreateService)
		serviceRoutes.GET("", h.ListServices)
	}

	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
