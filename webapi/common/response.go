package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"railroute/pkg/domain"
)

// ErrorResponse is the error body shape of every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorJSON writes an error body with the given status.
func ErrorJSON(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// ErrorToStatusCode maps domain errors to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrEmptyPayments):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrExecutionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnknownRail):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// DomainErrorJSON writes a domain error with its mapped status code.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	return ErrorJSON(c, ErrorToStatusCode(err), err.Error())
}

var validate = validator.New()

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure the error response is already
// written; callers should return nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, err
	}
	if err := validate.Struct(input); err != nil {
		_ = ErrorJSON(c, fiber.StatusBadRequest, validationMessage(err))
		return nil, err
	}
	return &input, nil
}

// validationMessage turns the first validator failure into a readable
// message instead of leaking the library's full error string.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Amount":
			return domain.ErrInvalidAmount.Error()
		case "Payments":
			return domain.ErrEmptyPayments.Error()
		}
		return "invalid value for field " + fe.Field()
	}
	return err.Error()
}
