package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/go-randomstring/randomstring/internal/generator"
)

type (
	// ErrorResponse represents a single failed validation.
	ErrorResponse struct {
		FailedField string `json:"failedField"`
		Tag         string `json:"tag"`
		Value       any    `json:"value"`
	}

	// GlobalErrorHandlerResp represents a global error response structure.
	GlobalErrorHandlerResp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Errors  []ErrorResponse `json:"errors,omitempty"`
	}
)

// ValidationErrors converts validator errors into ErrorResponse values.
func ValidationErrors(err error) []ErrorResponse {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	out := make([]ErrorResponse, len(validationErrors))
	for i, ve := range validationErrors {
		out[i] = ErrorResponse{
			FailedField: ve.Field(),
			Tag:         ve.Tag(),
			Value:       ve.Value(),
		}
	}

	return out
}

// Fail sends a JSON error body with the given status.
func Fail(c *fiber.Ctx, status int, message string, errs ...ErrorResponse) error {
	return c.Status(status).JSON(GlobalErrorHandlerResp{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// GenerationStatus maps a generation error to its HTTP status.
func GenerationStatus(err error) int {
	switch {
	case errors.Is(err, generator.ErrConfiguration):
		return fiber.StatusBadRequest
	case errors.Is(err, generator.ErrEntropyUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// FailGeneration sends the error response for a failed generation.
func FailGeneration(c *fiber.Ctx, err error) error {
	status := GenerationStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Msg("random string generation failed")
	}

	return Fail(c, status, err.Error())
}
