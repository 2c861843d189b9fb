package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

// ErrorHandler renders errors returned by handlers in the API's JSON error
// envelope. Internal errors are logged and their details are not sent to the
// client.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("request_id", RequestID(c)),
			)
			message = "Internal Server Error"
		}

		return c.Status(code).JSON(fiber.Map{
			"status": "error",
			"error":  message,
		})
	}
}
