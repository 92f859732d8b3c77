package handlers

import (
	"fmt"

	"github.com/anjiri1684/error_paper/middleware"
	"github.com/anjiri1684/error_paper/services"
	"github.com/gofiber/fiber/v2"
)

type ErrorIDParams struct {
	ErrorID string `params:"errorId" validate:"required"`
}

type PracticeIDParams struct {
	ID string `params:"id" validate:"required"`
}

type GenerateRequest struct {
	Count int `json:"count" validate:"omitempty,min=1,max=10"`
}

type ListPracticeQuery struct {
	Subject  string `query:"subject" validate:"omitempty,oneof=Math Science History Literature"`
	Category string `query:"category"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=200"`
	Offset   int    `query:"offset" validate:"omitempty,min=0"`
}

type PracticeHandler struct {
	practice *services.PracticeService
}

func NewPracticeHandler(practice *services.PracticeService) *PracticeHandler {
	return &PracticeHandler{practice: practice}
}

func (h *PracticeHandler) Generate(c *fiber.Ctx) error {
	params := middleware.Validated[ErrorIDParams](c, middleware.Params)
	req := middleware.Validated[GenerateRequest](c, middleware.Body)

	questions, err := h.practice.Generate(c.UserContext(), params.ErrorID, req.Count)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, questions, fmt.Sprintf("Generated %d practice questions", len(questions)))
}

func (h *PracticeHandler) ListForError(c *fiber.Ctx) error {
	params := middleware.Validated[ErrorIDParams](c, middleware.Params)

	questions, err := h.practice.ListForError(c.UserContext(), params.ErrorID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, questions, "")
}

func (h *PracticeHandler) List(c *fiber.Ctx) error {
	q := middleware.Validated[ListPracticeQuery](c, middleware.Query)

	questions, err := h.practice.List(c.UserContext(), services.ListFilter{
		Subject:  q.Subject,
		Category: q.Category,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, questions, "")
}

func (h *PracticeHandler) Delete(c *fiber.Ctx) error {
	params := middleware.Validated[PracticeIDParams](c, middleware.Params)

	result, err := h.practice.Delete(c.UserContext(), params.ID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, result, "Practice question deleted")
}
