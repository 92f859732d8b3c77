package routes

import (
	"log/slog"
	"time"

	"github.com/anjiri1684/error_paper/database"
	"github.com/anjiri1684/error_paper/handlers"
	"github.com/anjiri1684/error_paper/middleware"
	"github.com/anjiri1684/error_paper/services"
	"github.com/anjiri1684/error_paper/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Dependencies are the collaborators the HTTP layer is built from.
type Dependencies struct {
	Store      *database.Store
	Generator  services.QuestionGenerator
	Recognizer handlers.TextRecognizer

	// JWTSecret protects /api when set.
	JWTSecret   string
	CORSOrigins string
	// UploadDir holds OCR uploads while they are processed.
	UploadDir string
	// DisableAccessLog silences the request logger, mostly for tests.
	DisableAccessLog bool
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Error Paper",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  60 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  errorHandler,
	})

	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))
	app.Use(recover.New())
	if !deps.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}

	practice := handlers.NewPracticeHandler(services.NewPracticeService(deps.Store, deps.Generator))

	PublicRoutes(app, handlers.NewHealthHandler(deps.Store))

	api := app.Group("/api", middleware.Protected(deps.JWTSecret))
	PracticeRoutes(api, practice)
	ErrorQuestionRoutes(api, practice)
	UploadRoutes(api, handlers.NewOCRHandler(deps.Recognizer, deps.UploadDir))

	return app
}

// errorHandler is the single place errors become responses.
func errorHandler(c *fiber.Ctx, err error) error {
	code := utils.StatusCode(err)
	attrs := []any{
		"status", code,
		"kind", utils.Kind(err),
		"path", c.Path(),
		"method", c.Method(),
		"error", err,
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("request failed", attrs...)
	} else {
		slog.Debug("request rejected", attrs...)
	}
	return handlers.Fail(c, code, utils.PublicMessage(err), nil)
}
