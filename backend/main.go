package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizbuilder/backend/config"
	"quizbuilder/backend/middleware"
	"quizbuilder/backend/quizgen"
	"quizbuilder/backend/routes"
	"quizbuilder/backend/storage"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := utils.InitLogger(utils.LoggerConfig{EnableColors: true})

	db, err := utils.InitDB(cfg, logger)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	defer sqlDB.Close()

	avatars, err := storage.NewAvatarStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error initializing avatar storage: %v", err)
	}

	if cfg.UseOfflineGeneration() {
		logger.Println("Quiz generation running in offline mode")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: cfg.CORSOrigins != "*",
	}))
	app.Use(middleware.LoggingMiddleware(logger, true))

	routes.SetupRoutes(app, routes.Deps{
		Store:     store.New(db),
		Cfg:       cfg,
		Generator: quizgen.NewGenerator(cfg, nil, logger),
		Avatars:   avatars,
	})

	go func() {
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	logger.Println("Server exited properly")
}
