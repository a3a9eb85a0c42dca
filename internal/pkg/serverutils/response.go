package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shelf-assist-be/internal/pkg/apperrors"
)

var validate = validator.New()

// ValidateStruct runs struct-tag validation (used for config at startup).
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ErrorResponse is the uniform error payload of the upload surface.
func ErrorResponse(message string) fiber.Map {
	return fiber.Map{"error": message}
}

// ErrorHandlerMiddleware converts errors escaping a handler into the JSON
// error payload. Router errors keep their own status, so an unmatched path
// stays a 404. onError, when set, runs only for server faults; the consumer
// of this API is audio-only and a silent 500 would strand them, but a stray
// request must not make the device talk.
func ErrorHandlerMiddleware(onError func(error)) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := apperrors.HTTPStatus(err)
		message := err.Error()

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
			message = fiberErr.Message
		} else if status == fiber.StatusOK {
			// Collaborator degradation is reported by the handler itself;
			// reaching here means it leaked, treat as unexpected.
			status = fiber.StatusInternalServerError
		}

		if status >= fiber.StatusInternalServerError && onError != nil {
			onError(err)
		}
		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
