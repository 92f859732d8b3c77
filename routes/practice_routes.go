package routes

import (
	"github.com/anjiri1684/error_paper/handlers"
	"github.com/anjiri1684/error_paper/middleware"
	"github.com/gofiber/fiber/v2"
)

func PracticeRoutes(api fiber.Router, h *handlers.PracticeHandler) {
	practice := api.Group("/practice")

	// Fixed paths first so they are not captured by /:errorId.
	practice.Post("/submit", middleware.Validate[handlers.SubmitRequest](middleware.Body), h.Submit)
	practice.Get("/history/:error_id", middleware.Validate[handlers.HistoryParams](middleware.Params), h.History)
	practice.Get("/stats", h.Stats)

	practice.Get("", middleware.Validate[handlers.ListPracticeQuery](middleware.Query), h.List)
	practice.Post("/:errorId/generate",
		middleware.Validate[handlers.ErrorIDParams](middleware.Params),
		middleware.Validate[handlers.GenerateRequest](middleware.Body),
		h.Generate)
	practice.Get("/:errorId", middleware.Validate[handlers.ErrorIDParams](middleware.Params), h.ListForError)
	practice.Delete("/:id", middleware.Validate[handlers.PracticeIDParams](middleware.Params), h.Delete)
}
