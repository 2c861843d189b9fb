package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with a UUID, reusing the client's
// id when one is supplied.
func RequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header: RequestIDHeader,
		Generator: func() string {
			return uuid.NewString()
		},
	})
}

// RequestID returns the id assigned to the current request, or "".
func RequestID(c fiber.Ctx) string {
	return requestid.FromContext(c)
}
