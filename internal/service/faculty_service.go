package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

// ErrFacultyNotFound indicates the requested faculty does not exist.
var ErrFacultyNotFound = errors.New("faculty not found")

// ErrFacultyHasMarks indicates the faculty is still referenced by marks
// rows and must not be deleted.
var ErrFacultyHasMarks = errors.New("faculty is referenced by existing marks")

// FacultyService exposes faculty profile use cases.
type FacultyService interface {
	Profile(ctx context.Context, facultyID string) (dto.FacultyResponse, error)
	Assignments(ctx context.Context, facultyID string) ([]dto.AssignmentResponse, error)
	Delete(ctx context.Context, facultyID string) error
}

type facultyService struct {
	repo   repository.FacultyRepository
	logger zerolog.Logger
}

// NewFacultyService builds a faculty service.
func NewFacultyService(repo repository.FacultyRepository, logger zerolog.Logger) FacultyService {
	return &facultyService{
		repo:   repo,
		logger: logger.With().Str("component", "faculty_service").Logger(),
	}
}

func (s *facultyService) Profile(ctx context.Context, facultyID string) (dto.FacultyResponse, error) {
	faculty, err := s.repo.GetByID(ctx, facultyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.FacultyResponse{}, ErrFacultyNotFound
		}
		return dto.FacultyResponse{}, err
	}

	return dto.NewFacultyResponse(faculty), nil
}

func (s *facultyService) Assignments(ctx context.Context, facultyID string) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.ListAssignments(ctx, facultyID)
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentResponseSlice(assignments), nil
}

// Delete removes a faculty and, via cascade, its assignments. The storage
// layer rejects the delete while any marks row references the faculty.
func (s *facultyService) Delete(ctx context.Context, facultyID string) error {
	if err := s.repo.Delete(ctx, facultyID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrFacultyNotFound
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return ErrFacultyHasMarks
		default:
			return err
		}
	}

	s.logger.Info().Str("faculty_id", facultyID).Msg("faculty deleted")
	return nil
}
