package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"barcodeapi/internal/http/middleware"
	"barcodeapi/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func requestIDFromCtx(c *fiber.Ctx) string {
	rid, _ := c.Locals(middleware.RequestIDLocalKey).(string)
	return rid
}

// writeError writes the error envelope. message must be safe to show callers.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	})
}

// writeServiceError maps a service failure to its status and code. Only the
// classified message is rendered; the cause stays in the service logs. A
// failure caused by the request deadline is returned to the timeout wrapper.
func writeServiceError(c *fiber.Ctx, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	message := "internal server error"
	var se *service.Error
	if errors.As(err, &se) {
		message = se.Message
	}

	switch service.KindOf(err) {
	case service.KindNotFound:
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", message)
	case service.KindForbidden:
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", message)
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", message)
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "authentication required")
		case fiber.StatusForbidden:
			return writeError(c, status, "FORBIDDEN", "forbidden")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestTimeout:
			return writeError(c, status, "TIMEOUT", "request timed out")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
