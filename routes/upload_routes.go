package routes

import (
	"github.com/anjiri1684/error_paper/handlers"
	"github.com/gofiber/fiber/v2"
)

func UploadRoutes(api fiber.Router, h *handlers.OCRHandler) {
	api.Post("/ocr", h.Recognize)
}
