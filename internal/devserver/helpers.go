package devserver

import (
	"errors"

	"vitalog/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError writes a JSON error body with a message field, mapping the
// application error taxonomy to HTTP statuses.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch appErr.Code {
		case models.CodeNotFound:
			status = fiber.StatusNotFound
		case models.CodeValidation:
			status = fiber.StatusBadRequest
		case models.CodeUnauthorized, models.CodeNotAuthenticated:
			status = fiber.StatusUnauthorized
		case models.CodeConflict:
			status = fiber.StatusConflict
		case models.CodeNotSupported:
			status = fiber.StatusNotFound
		default:
			status = fiber.StatusBadGateway
		}
	}

	return c.Status(status).JSON(fiber.Map{"message": message})
}

// parseBody decodes the request body, translating decode failures into a
// validation error response.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return models.NewValidationError("invalid request body")
	}
	return nil
}

// apiToken returns the backing client token resolved by the auth
// middleware. Empty on optional-auth routes without a bearer token.
func apiToken(c *fiber.Ctx) string {
	token, _ := c.Locals(localsTokenKey).(string)
	return token
}
