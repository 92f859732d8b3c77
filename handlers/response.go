package handlers

import "github.com/gofiber/fiber/v2"

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func respond(c *fiber.Ctx, status int, data any, message string) error {
	return c.Status(status).JSON(Envelope{Success: true, Data: data, Message: message})
}

// Fail renders an error envelope. The app's error handler uses it for every
// failed request.
func Fail(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Envelope{Success: false, Error: message, Data: data})
}
