package handlers

import (
	"github.com/anjiri1684/error_paper/middleware"
	"github.com/gofiber/fiber/v2"
)

type SubmitRequest struct {
	ErrorID string   `json:"error_id" validate:"required"`
	Answers []string `json:"answers"`
}

type HistoryParams struct {
	ErrorID string `params:"error_id" validate:"required"`
}

func (h *PracticeHandler) Submit(c *fiber.Ctx) error {
	req := middleware.Validated[SubmitRequest](c, middleware.Body)

	result, err := h.practice.Submit(c.UserContext(), req.ErrorID, req.Answers)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusCreated, result, "Practice answers submitted")
}

func (h *PracticeHandler) History(c *fiber.Ctx) error {
	params := middleware.Validated[HistoryParams](c, middleware.Params)

	records, err := h.practice.History(c.UserContext(), params.ErrorID)
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, records, "")
}

func (h *PracticeHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.practice.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, fiber.StatusOK, stats, "")
}
