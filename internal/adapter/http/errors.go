package http

import (
	"errors"
	"log/slog"

	"resume-builder/internal/model"
	"resume-builder/internal/usecase"
	ai "resume-builder/pkg/ai"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// HTTPStatus maps domain errors to response codes.
func HTTPStatus(err error) int {
	var (
		fe  *fiber.Error
		ve  *ai.ValidationError
		fld *model.FieldError
		se  *model.SchemaError
		vs  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &ve), errors.As(err, &fld), errors.As(err, &se), errors.As(err, &vs),
		errors.Is(err, usecase.ErrInvalidDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrSessionNotFound), errors.Is(err, usecase.ErrUnknownKind),
		errors.Is(err, usecase.ErrEntityNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, usecase.ErrBusy):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders every error as {"error": message}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := HTTPStatus(err)

	message := err.Error()
	var vs validator.ValidationErrors
	if errors.As(err, &vs) {
		message = validationMessage(vs)
	}
	if message == "" {
		message = "Internal Server Error"
	}

	body := fiber.Map{"error": message}
	var se *model.SchemaError
	if errors.As(err, &se) {
		body["problems"] = se.Problems
	}

	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed", "method", c.Method(), "path", c.Path(), "status", code, "error", err)
	}
	return c.Status(code).JSON(body)
}
