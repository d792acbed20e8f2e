package app

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pairchat-backend/internal/db"
	"pairchat-backend/internal/handlers"
	"pairchat-backend/internal/models"
	"pairchat-backend/internal/services"
	"pairchat-backend/internal/store/pgstore"
	"pairchat-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func Run() {
	// Load Env
	if err := utils.LoadEnv(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Init DB
	connString := utils.GetEnv("DATABASE_URL", "")
	if connString == "" {
		// Fallback to individual vars
		connString = "postgres://" + utils.GetEnv("POSTGRES_USER", "postgres") + ":" +
			utils.GetEnv("POSTGRES_PASSWORD", "postgres") + "@" +
			utils.GetEnv("POSTGRES_HOST", "localhost") + ":" +
			utils.GetEnv("POSTGRES_PORT", "5432") + "/" +
			utils.GetEnv("POSTGRES_DB", "chatdb") + "?sslmode=disable"
	}

	pool, err := db.Connect(context.Background(), connString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	st, err := pgstore.New(context.Background(), pool)
	if err != nil {
		log.Fatalf("Failed to prepare schema: %v", err)
	}

	// Services and relay
	userService := services.NewUserService(st)
	relay := handlers.NewRelay(st)

	// Fiber App
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Ensure upload dir exists and serve uploaded files
	uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		log.Printf("Warning: failed to create upload dir: %v", err)
	}
	app.Static("/uploads", uploadDir)

	// Routes
	api := app.Group("/api")

	// Public Routes
	api.Post("/auth/register", func(c *fiber.Ctx) error {
		var req models.RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		user, err := userService.Register(c.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRequest) {
				return c.Status(400).JSON(fiber.Map{"error": "name, email and password required"})
			}
			if errors.Is(err, services.ErrUserExists) {
				return c.Status(400).JSON(fiber.Map{"error": "email already registered"})
			}
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		token, err := services.GenerateJWT(user.ID, user.Name, user.Email)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "failed to generate token"})
		}
		return c.Status(201).JSON(models.AuthResponse{Token: token, User: user})
	})

	api.Post("/auth/login", func(c *fiber.Ctx) error {
		var req models.LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
		}
		res, err := userService.Login(c.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrAccountBlocked) {
				return c.Status(403).JSON(fiber.Map{"error": err.Error()})
			}
			return c.Status(401).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(res)
	})

	// Protected Routes
	protected := api.Group("/")
	protected.Use(handlers.AuthMiddleware)

	protected.Get("/auth/me", handlers.GetProfileHandler(userService))

	// Users
	protected.Get("/users", handlers.ListUsersHandler(st, relay))

	// Chat Routes
	protected.Get("/chats", handlers.ListChatsHandler(st))
	protected.Post("/chats", handlers.CreateChatHandler(st))
	protected.Get("/chats/:chat_id/messages", handlers.ListMessagesHandler(st))

	// Profile endpoints
	protected.Get("/profile", handlers.GetProfileHandler(userService))
	protected.Put("/profile/avatar", handlers.UploadAvatarHandler(userService))

	// Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// WebSocket Route
	// Note: Middleware order matters. AuthMiddleware checks token.
	// WSUpgradeMiddleware checks if it's a WS request.
	app.Use("/ws", handlers.WSUpgradeMiddleware)
	app.Use("/ws", handlers.AuthMiddleware)
	app.Get("/ws", handlers.WebSocketHandler(relay))

	// Start Server
	port := utils.GetEnv("PORT", "3001")
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Graceful Shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Block until signal
	log.Println("Gracefully shutting down...")
	_ = app.Shutdown()
	log.Println("Server shutdown complete")
}
