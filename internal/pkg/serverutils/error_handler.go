package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// StatusMapper resolves a domain error to an HTTP status. Zero means "not mine".
type StatusMapper func(err error) int

// ErrorHandlerMiddleware turns errors returned by handlers into the standard
// error envelope. Mappers are consulted in order before the built-in rules.
func ErrorHandlerMiddleware(mappers ...StatusMapper) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := resolve(err, mappers)
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func resolve(err error, mappers []StatusMapper) (int, string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fiber.StatusBadRequest, formatValidationErrors(validationErrs)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	for _, mapper := range mappers {
		if code := mapper(err); code != 0 {
			return code, err.Error()
		}
	}

	return fiber.StatusInternalServerError, err.Error()
}
