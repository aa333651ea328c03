package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gradebook-api/internal/service"
	"github.com/noah-isme/gradebook-api/internal/utils"
)

// FacultyHandler wires faculty profile endpoints.
type FacultyHandler struct {
	service service.FacultyService
	logger  zerolog.Logger
}

// NewFacultyHandler constructs the handler.
func NewFacultyHandler(service service.FacultyService, logger zerolog.Logger) *FacultyHandler {
	return &FacultyHandler{
		service: service,
		logger:  logger.With().Str("component", "faculty_handler").Logger(),
	}
}

// Register attaches faculty endpoints to the router group.
func (h *FacultyHandler) Register(router fiber.Router) {
	router.Get("/me", h.me)
	router.Get("/me/assignments", h.assignments)
	router.Delete("/:id", h.delete)
}

func (h *FacultyHandler) me(c *fiber.Ctx) error {
	profile, err := h.service.Profile(c.Context(), facultyIDFromContext(c))
	if err != nil {
		if errors.Is(err, service.ErrFacultyNotFound) {
			return utils.SendError(c, fiber.StatusUnauthorized, "unknown faculty")
		}
		return h.internalError(c, err)
	}

	return c.JSON(profile)
}

func (h *FacultyHandler) assignments(c *fiber.Ctx) error {
	assignments, err := h.service.Assignments(c.Context(), facultyIDFromContext(c))
	if err != nil {
		return h.internalError(c, err)
	}

	return c.JSON(assignments)
}

func (h *FacultyHandler) delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.service.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, service.ErrFacultyNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "faculty not found")
		case errors.Is(err, service.ErrFacultyHasMarks):
			return utils.SendError(c, fiber.StatusConflict, "faculty is referenced by existing marks")
		default:
			return h.internalError(c, err)
		}
	}

	return utils.SendSuccess(c, "faculty deleted", fiber.Map{"id": id})
}

func (h *FacultyHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
