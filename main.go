package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"tienda/internal/config"
	"tienda/internal/database"
	"tienda/internal/handlers"
	"tienda/internal/middleware"
	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/sequence"
	"tienda/internal/services"
	"tienda/internal/validation"
	"tienda/pkg/logger"
)

func main() {
	// --- Configuration ---
	// Missing database variables are fatal: the process must not serve
	// traffic it cannot persist.
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("configuration error")
	}

	log := logger.New("tienda", cfg.LogLevel)

	// --- Database ---
	// One connection for the whole process, closed on shutdown.
	db, err := database.Connect(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	// --- Shared components ---
	seq := sequence.NewGormGenerator(db)
	validate := validation.New()

	// --- Repositories ---
	userRepo := repositories.NewGormUserRepository(db)
	orderRepo := repositories.NewGormRepository[models.Order](db)
	paymentRepo := repositories.NewGormPaymentRepository(db)
	productRepo := repositories.NewGormRepository[models.Product](db)
	cartRepo := repositories.NewGormCartRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, seq, log.WithField("component", "auth"), cfg.JWTSecret)
	orderService := services.NewOrderService(orderRepo, seq, log.WithField("component", "orders"))
	paymentService := services.NewPaymentService(paymentRepo, seq, log.WithField("component", "payments"))
	productService := services.NewProductService(productRepo, seq, log.WithField("component", "products"))
	cartService := services.NewCartService(cartRepo, seq, log.WithField("component", "cart"))

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, validate)
	orderHandler := handlers.NewOrderHandler(orderService, validate)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validate)
	productHandler := handlers.NewProductHandler(productService, validate)
	cartHandler := handlers.NewCartHandler(cartService, validate)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)
	paymentHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	cartHandler.RegisterRoutes(api)
	api.Get("/me", middleware.AuthRequired(authService), authHandler.HandleMe)

	// No dependency check: the endpoint reports process liveness only.
	app.Get("/healthcheck", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// --- Start server with graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.WithField("port", cfg.AppPort).Info("starting server")
		if err := app.Listen(cfg.AppPort); err != nil {
			log.WithError(err).Fatal("server failed to start")
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Shutdown(); err != nil {
		log.WithError(err).Error("error during shutdown")
	}
	log.Info("server stopped")
}
