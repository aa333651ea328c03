package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/gradebook-api/internal/service"
)

func facultyIDFromContext(c *fiber.Ctx) string {
	if v := c.Locals("faculty_id"); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func facultyEmailFromContext(c *fiber.Ctx) string {
	if v := c.Locals("faculty_email"); v != nil {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}

func facultyActorFromContext(c *fiber.Ctx) service.FacultyActor {
	return service.FacultyActor{
		ID:    facultyIDFromContext(c),
		Email: facultyEmailFromContext(c),
	}
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}
