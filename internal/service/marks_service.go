package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/models"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

// ErrScoreOutOfRange indicates a score component lies outside its permitted range.
var ErrScoreOutOfRange = errors.New("score out of range")

// ErrMarksConflict indicates the row kept conflicting even after the
// duplicate-key retry.
var ErrMarksConflict = errors.New("conflicting marks write")

// MarksService records and updates marks per (student, class, subject).
type MarksService interface {
	Upsert(ctx context.Context, payload dto.MarksUpsertRequest, actor FacultyActor) (dto.MarksResponse, error)
}

type marksService struct {
	marks     repository.MarksRepository
	students  repository.StudentRepository
	validator *validator.Validate
	activity  ActivityRecorder
	logger    zerolog.Logger
}

// NewMarksService constructs the marks service.
func NewMarksService(marks repository.MarksRepository, students repository.StudentRepository, validate *validator.Validate, activity ActivityRecorder, logger zerolog.Logger) MarksService {
	return &marksService{
		marks:     marks,
		students:  students,
		validator: validate,
		activity:  activity,
		logger:    logger.With().Str("component", "marks_service").Logger(),
	}
}

// Upsert validates the score components, resolves the student, and saves the
// row transactionally. When two requests race on the same composite key the
// loser observes a duplicate-key error and is retried once, turning it into
// an update of the winner's row.
func (s *marksService) Upsert(ctx context.Context, payload dto.MarksUpsertRequest, actor FacultyActor) (dto.MarksResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/gradebook-api/internal/service/marks")
	ctx, span := tracer.Start(ctx, "marks.upsert", trace.WithAttributes(
		attribute.String("marks.student_id", payload.StudentID),
		attribute.String("marks.class_name", payload.ClassName),
		attribute.String("marks.subject", payload.Subject),
	))
	defer span.End()

	if err := s.validator.Struct(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation_failed")
		return dto.MarksResponse{}, err
	}

	if err := validateRanges(payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "score_out_of_range")
		return dto.MarksResponse{}, err
	}

	student, err := s.students.GetByID(ctx, payload.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			span.SetStatus(codes.Error, "student_not_found")
			return dto.MarksResponse{}, ErrStudentNotFound
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "student_lookup_failed")
		return dto.MarksResponse{}, err
	}

	merge := func(existing models.Marks) models.Marks {
		merged := existing
		merged.FacultyEmail = actor.Email
		if payload.CT1 != nil {
			merged.CT1 = payload.CT1
		}
		if payload.Insem != nil {
			merged.Insem = payload.Insem
		}
		if payload.CT2 != nil {
			merged.CT2 = payload.CT2
		}
		merged.RecomputeTotal()
		return merged
	}

	saved, err := s.marks.Save(ctx, student.ID, payload.ClassName, payload.Subject, merge)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert race; the row exists now, so a second pass updates it.
		saved, err = s.marks.Save(ctx, student.ID, payload.ClassName, payload.Subject, merge)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "marks_save_failed")
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.MarksResponse{}, ErrMarksConflict
		}
		return dto.MarksResponse{}, err
	}

	if s.activity != nil {
		metadata := map[string]interface{}{
			"student_id": payload.StudentID,
			"class_name": payload.ClassName,
			"subject":    payload.Subject,
		}
		if saved.Total != nil {
			metadata["total"] = *saved.Total
		}
		if err := s.activity.Record(ctx, ActivityEntry{
			ActorEmail: actor.Email,
			Action:     "marks.recorded",
			EntityType: "marks",
			EntityID:   saved.ID,
			Metadata:   metadata,
		}); err != nil {
			s.logger.Warn().Err(err).Str("marks_id", saved.ID).Msg("failed to record marks activity")
		}
	}

	s.logger.Info().
		Str("marks_id", saved.ID).
		Str("student_id", payload.StudentID).
		Str("faculty_email", actor.Email).
		Msg("marks saved")

	return dto.NewMarksResponse(saved), nil
}

func validateRanges(payload dto.MarksUpsertRequest) error {
	checks := []struct {
		name  string
		value *float64
		max   float64
	}{
		{"ct1", payload.CT1, models.MaxCT1},
		{"insem", payload.Insem, models.MaxInsem},
		{"ct2", payload.CT2, models.MaxCT2},
	}

	for _, check := range checks {
		if check.value == nil {
			continue
		}
		if *check.value < 0 || *check.value > check.max {
			return fmt.Errorf("%w: %s must be between 0 and %g", ErrScoreOutOfRange, check.name, check.max)
		}
	}

	return nil
}
