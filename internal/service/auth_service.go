package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password,
// so a caller cannot probe which faculty accounts exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService verifies faculty credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error)
}

type authService struct {
	faculty   repository.FacultyRepository
	validator *validator.Validate
	secret    []byte
	tokenTTL  time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

// NewAuthService builds the authentication service.
func NewAuthService(faculty repository.FacultyRepository, validate *validator.Validate, secret string, tokenTTL time.Duration, logger zerolog.Logger) AuthService {
	return &authService{
		faculty:   faculty,
		validator: validate,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger.With().Str("component", "auth_service").Logger(),
		now:       time.Now,
	}
}

func (s *authService) Login(ctx context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.LoginResponse{}, err
	}

	faculty, err := s.faculty.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.LoginResponse{}, ErrInvalidCredentials
		}
		return dto.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(faculty.Password), []byte(payload.Password)); err != nil {
		s.logger.Warn().Str("email", payload.Email).Msg("failed login attempt")
		return dto.LoginResponse{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(faculty.ID, faculty.Email)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info().Str("faculty_id", faculty.ID).Msg("faculty logged in")

	return dto.LoginResponse{
		Token:   token,
		Faculty: dto.NewFacultyResponse(faculty),
	}, nil
}

func (s *authService) issueToken(facultyID, email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   facultyID,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
