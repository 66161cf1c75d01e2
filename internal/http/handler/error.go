package handler

import "github.com/gofiber/fiber/v2"

// detailPayload is the error response body: {"detail": <message>}.
type detailPayload struct {
	Detail string `json:"detail"`
}

// writeError writes the error response without leaking internal errors.
// The message must already be safe for clients.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(detailPayload{Detail: message})
}

// ErrorHandler returns a Fiber global error handler that standardizes
// responses for errors no route handler translated itself. Anything
// uncategorized becomes a 500 with a generic message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "uploaded file is too large")
		default:
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}
	}
}
