package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"csvtool/internal/service"
)

// HealthCheck reports service readiness. There are no backing
// dependencies, so readiness equals liveness.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	}
}

// LivenessProbe is a bare 200 liveness endpoint.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// AnalyzeCSV handles the CSV upload (multipart/form-data, field name: file)
// and returns the analysis result. Validation and parse failures are client
// errors with a {"detail": ...} body; anything unexpected is a generic 500.
func AnalyzeCSV(svc service.AnalyzeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "cannot open uploaded file")
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "internal server error")
		}

		res, err := svc.Analyze(c.UserContext(), raw, fh.Filename)
		if err != nil {
			var perr *service.ParseError
			switch {
			case errors.Is(err, service.ErrUnsupportedFileType),
				errors.Is(err, service.ErrEmptyFile):
				return writeError(c, fiber.StatusBadRequest, err.Error())
			case errors.As(err, &perr):
				return writeError(c, fiber.StatusBadRequest, perr.Error())
			default:
				return writeError(c, fiber.StatusInternalServerError, "internal server error")
			}
		}

		return c.JSON(res)
	}
}
