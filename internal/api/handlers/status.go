package handlers

import (
	"errors"

	"FreshStock-Backend/domain"

	"github.com/gofiber/fiber/v2"
)

// Domain failures become 400s, anything else is a backing store
// problem and surfaces as 500 with a generic message.
func serviceErrorStatus(err error) int {
	for _, known := range []error{
		domain.ErrEmailAlreadyRegistered,
		domain.ErrInvalidCredentials,
		domain.ErrPasswordNotMatch,
		domain.ErrUserNotFound,
		domain.ErrNoStorage,
		domain.ErrInvalidExpDate,
		domain.ErrInvalidPrice,
		domain.ErrEmptyItemName,
		domain.ErrInvalidDays,
		domain.ErrParseUUID,
	} {
		if errors.Is(err, known) {
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
