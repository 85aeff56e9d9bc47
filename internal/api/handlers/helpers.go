package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
)

var validate = validator.New()

// GetUserID reads the authenticated user id set by the auth middleware.
func GetUserID(c *fiber.Ctx) int64 {
	userID, ok := c.Locals("user_id").(string)
	if !ok {
		return 0
	}

	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// respondError maps service errors onto HTTP statuses. Unknown errors get
// a generic 500 body so internals never leak to clients.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, service.ErrValidation):
		status = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrNotFound):
		status = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrUnauthenticated):
		status = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrUpstream):
		status = fiber.StatusBadGateway
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// parseAndValidate decodes the JSON body into dst and runs the struct
// validation tags.
func parseAndValidate(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return errors.New("Unable to parse request body")
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// paramID parses a numeric path parameter, 0 when absent or malformed.
func paramID(c *fiber.Ctx, name string) int64 {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
