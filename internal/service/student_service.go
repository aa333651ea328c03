package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// StudentService exposes roster queries and student maintenance.
type StudentService interface {
	ListByClassAndSubject(ctx context.Context, payload dto.StudentListRequest) ([]dto.StudentResponse, error)
	Delete(ctx context.Context, studentRowID string) error
}

type studentService struct {
	repo      repository.StudentRepository
	validator *validator.Validate
	cache     *redis.Client
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewStudentService builds the student roster service. The cache client may
// be nil, in which case every query hits the database.
func NewStudentService(repo repository.StudentRepository, validate *validator.Validate, cache *redis.Client, cacheTTL time.Duration, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		validator: validate,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

func (s *studentService) ListByClassAndSubject(ctx context.Context, payload dto.StudentListRequest) ([]dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("roster:%s:%s", payload.ClassName, payload.Subject)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var roster []dto.StudentResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &roster); unmarshalErr == nil {
				s.logger.Debug().Str("key", cacheKey).Msg("roster cache hit")
				return roster, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read roster cache")
		}
	}

	students, err := s.repo.ListByClassAndSubject(ctx, payload.ClassName, payload.Subject)
	if err != nil {
		return nil, err
	}

	roster := dto.NewStudentResponseSlice(students)

	if s.cache != nil {
		if data, err := json.Marshal(roster); err == nil {
			if err := s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store roster cache")
			}
		}
	}

	return roster, nil
}

// Delete removes a student; enrollments cascade at the storage layer.
func (s *studentService) Delete(ctx context.Context, studentRowID string) error {
	if err := s.repo.Delete(ctx, studentRowID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	s.logger.Info().Str("student_id", studentRowID).Msg("student deleted")
	return nil
}
