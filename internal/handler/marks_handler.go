package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/service"
	"github.com/noah-isme/gradebook-api/internal/utils"
)

// MarksHandler wires the marks recording endpoint.
type MarksHandler struct {
	service service.MarksService
	logger  zerolog.Logger
}

// NewMarksHandler constructs the handler.
func NewMarksHandler(service service.MarksService, logger zerolog.Logger) *MarksHandler {
	return &MarksHandler{
		service: service,
		logger:  logger.With().Str("component", "marks_handler").Logger(),
	}
}

// Register attaches marks endpoints to the router group.
func (h *MarksHandler) Register(router fiber.Router) {
	router.Post("", h.upsert)
}

func (h *MarksHandler) upsert(c *fiber.Ctx) error {
	var payload dto.MarksUpsertRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	actor := facultyActorFromContext(c)

	saved, err := h.service.Upsert(c.Context(), payload, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScoreOutOfRange):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrStudentNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "student not found")
		case errors.Is(err, service.ErrMarksConflict):
			return utils.SendError(c, fiber.StatusConflict, "marks are being updated concurrently, retry")
		default:
			return h.internalError(c, err)
		}
	}

	return c.JSON(dto.MarksSavedResponse{
		Message: "marks saved successfully",
		Marks:   saved,
	})
}

func (h *MarksHandler) internalError(c *fiber.Ctx, err error) error {
	h.logger.Error().Err(err).Msg("internal server error")
	return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
}
