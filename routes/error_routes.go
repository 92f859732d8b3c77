package routes

import (
	"github.com/anjiri1684/error_paper/handlers"
	"github.com/anjiri1684/error_paper/middleware"
	"github.com/gofiber/fiber/v2"
)

func ErrorQuestionRoutes(api fiber.Router, h *handlers.PracticeHandler) {
	errors := api.Group("/errors")

	errors.Post("", middleware.Validate[handlers.CreateErrorQuestionRequest](middleware.Body), h.CreateErrorQuestion)
	errors.Get("/:id", middleware.Validate[handlers.PracticeIDParams](middleware.Params), h.GetErrorQuestion)
}
