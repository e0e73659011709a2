package controller

import (
	"errors"
	"strconv"

	"brandkit-admin-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StatusForError maps service errors onto HTTP statuses for the error middleware.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrNoFieldsToUpdate),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidField):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrTopicNotFound),
		errors.Is(err, service.ErrSubtopicNotFound),
		errors.Is(err, service.ErrEntityNotFound),
		errors.Is(err, service.ErrProductTypeNotFound),
		errors.Is(err, service.ErrEntityProductNotFound),
		errors.Is(err, service.ErrLogNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrEntityProductExists):
		return fiber.StatusConflict
	}
	return 0
}

var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

func paramID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
