package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/gradebook-api/internal/dto"
	"github.com/noah-isme/gradebook-api/internal/models"
)

func seedFacultyAccount(t *testing.T, repo *fakeFacultyRepo, email, password string) models.Faculty {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	faculty := models.Faculty{
		Name:       "Dr. Rajesh Kumar",
		Email:      email,
		EmployeeID: "EMP001",
		Password:   string(hash),
	}
	require.NoError(t, repo.Create(context.Background(), &faculty))
	return faculty
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo := newFakeFacultyRepo()
	faculty := seedFacultyAccount(t, repo, "rajesh@university.edu", "password123")

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewAuthService(repo, validate, "test-secret", time.Hour, testLogger())

	result, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "rajesh@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, faculty.Email, result.Faculty.Email)
	require.Equal(t, faculty.EmployeeID, result.Faculty.EmployeeID)

	token, err := jwt.Parse(result.Token, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	require.Equal(t, faculty.ID, claims["sub"])
	require.Equal(t, faculty.Email, claims["email"])
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := newFakeFacultyRepo()
	seedFacultyAccount(t, repo, "rajesh@university.edu", "password123")

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewAuthService(repo, validate, "test-secret", time.Hour, testLogger())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "rajesh@university.edu",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	repo := newFakeFacultyRepo()

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewAuthService(repo, validate, "test-secret", time.Hour, testLogger())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@university.edu",
		Password: "password123",
	})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthServiceLoginValidatesPayload(t *testing.T) {
	repo := newFakeFacultyRepo()

	validate := validator.New(validator.WithRequiredStructEnabled())
	svc := NewAuthService(repo, validate, "test-secret", time.Hour, testLogger())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "not-an-email",
		Password: "password123",
	})
	require.Error(t, err)

	var validationErrors validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrors)
}
