package handlers

import (
	"github.com/anjiri1684/error_paper/middleware"
	"github.com/anjiri1684/error_paper/models"
	"github.com/anjiri1684/error_paper/services"
	"github.com/gofiber/fiber/v2"
)

type CreateErrorQuestionRequest struct {
	Subject          string   `json:"subject" validate:"required,oneof=Math Science History Literature"`
	Difficulty       string   `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	OriginalQuestion string   `json:"original_question" validate:"required"`
	Options          []string `json:"options"`
	CorrectAnswer    string   `json:"correct_answer" validate:"required"`
	Category         string   `json:"category" validate:"max=100"`
}

func (h *PracticeHandler) CreateErrorQuestion(c *fiber.Ctx) error {
	req := middleware.Validated[CreateErrorQuestionRequest](c, middleware.Body)

	question, err := h.practice.CreateErrorQuestion(c.UserContext(), services.CreateErrorQuestionParams{
		Subject:          models.Subject(req.Subject),
		Difficulty:       models.Difficulty(req.Difficulty),
		OriginalQuestion: req.OriginalQuestion,
		Options:          req.Options,
		CorrectAnswer:    req.CorrectAnswer,
		Category:         req.Category,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, question, "Error question saved")
}

func (h *PracticeHandler) GetErrorQuestion(c *fiber.Ctx) error {
	params := middleware.Validated[PracticeIDParams](c, middleware.Params)

	question, err := h.practice.GetErrorQuestion(c.UserContext(), params.ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, question, "")
}
