package routes

import (
	"errors"
	"log"

	"quizbuilder/backend/config"
	"quizbuilder/backend/controllers"
	"quizbuilder/backend/middleware"
	"quizbuilder/backend/quizgen"
	"quizbuilder/backend/storage"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Deps are the long-lived components the handlers share.
type Deps struct {
	Store     *store.Store
	Cfg       *config.Config
	Generator *quizgen.Generator
	Avatars   *storage.AvatarStore
}

// SetupRoutes registers every API route on app.
func SetupRoutes(app *fiber.App, deps Deps) {
	authMiddleware := middleware.AuthMiddleware(deps.Store, deps.Cfg)

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return utils.OK(c)
	})

	// Auth routes
	authController := controllers.NewAuthController(deps.Store, deps.Cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// User routes
	userController := controllers.NewUserController(deps.Store, deps.Cfg, deps.Avatars)
	users := app.Group("/api/users/me", authMiddleware)
	users.Get("/", userController.GetProfile)
	users.Put("/", userController.UpdateProfile)
	users.Post("/avatar", userController.UploadAvatar)

	// Quiz routes
	quizController := controllers.NewQuizController(deps.Store, deps.Cfg, deps.Generator)
	app.Post("/api/generate-quiz", quizController.GenerateQuiz)

	quizzes := app.Group("/api/quizzes", authMiddleware)
	quizzes.Post("/", quizController.CreateQuiz)
	quizzes.Get("/", quizController.ListQuizzes)
	quizzes.Get("/:id", quizController.GetQuiz)
	quizzes.Delete("/:id", quizController.DeleteQuiz)
	quizzes.Post("/:id/score", quizController.SaveScore)
	quizzes.Get("/:id/results", quizController.ListResults)

	// Progress routes
	progressController := controllers.NewProgressController(deps.Store, deps.Cfg)
	app.Get("/api/progress/overview", authMiddleware, progressController.GetProgressOverview)
}

// ErrorHandler renders errors returned by handlers. Unexpected errors, such as
// persistence failures, become a generic 500.
func ErrorHandler(logger *log.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.Error(c, fe.Code, fe)
		}

		logger.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), err)
		return utils.InternalServerError(c, "Internal server error")
	}
}
