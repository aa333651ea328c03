package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedSummary reports how many rows the seeding pass created.
type SeedSummary struct {
	Faculty     int `json:"faculty"`
	Students    int `json:"students"`
	Assignments int `json:"assignments"`
	Enrollments int `json:"enrollments"`
}

// SeedService loads the reference dataset used for local development and
// migration verification. Seeding is idempotent: rows that already exist
// under their unique keys are skipped.
type SeedService interface {
	Seed(ctx context.Context, token string) (SeedSummary, error)
}

type seedService struct {
	faculty  repository.FacultyRepository
	students repository.StudentRepository
	enabled  bool
	token    string
	logger   zerolog.Logger
}

// NewSeedService constructs the seeding service.
func NewSeedService(faculty repository.FacultyRepository, students repository.StudentRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		faculty:  faculty,
		students: students,
		enabled:  enabled,
		token:    token,
		logger:   logger.With().Str("component", "seed_service").Logger(),
	}
}

type seedFaculty struct {
	name       string
	email      string
	employeeID string
	// class/subject pairs taught
	assignments [][2]string
}

type seedStudent struct {
	name      string
	studentID string
	className string
	subjects  []string
}

// seedPassword is the well-known development credential for every seeded
// faculty account. It is stored hashed.
const seedPassword = "password123"

var seedFaculties = []seedFaculty{
	{
		name:       "Dr. Rajesh Kumar",
		email:      "rajesh@university.edu",
		employeeID: "EMP001",
		assignments: [][2]string{
			{"Class 10A", "Mathematics"},
			{"Class 10B", "Mathematics"},
		},
	},
	{
		name:       "Dr. Priya Sharma",
		email:      "priya@university.edu",
		employeeID: "EMP002",
		assignments: [][2]string{
			{"Class 10A", "Physics"},
			{"Class 9A", "Physics"},
		},
	},
	{
		name:       "Prof. Amit Verma",
		email:      "amit@university.edu",
		employeeID: "EMP003",
		assignments: [][2]string{
			{"Class 10A", "Chemistry"},
		},
	},
}

var seedStudents = []seedStudent{
	{"Aarav Patel", "10A001", "Class 10A", []string{"Mathematics", "Physics", "Chemistry"}},
	{"Diya Singh", "10A002", "Class 10A", []string{"Mathematics", "Physics", "Chemistry"}},
	{"Ishaan Gupta", "10A003", "Class 10A", []string{"Mathematics", "Physics", "Chemistry"}},
	{"Ananya Reddy", "10B001", "Class 10B", []string{"Mathematics", "Physics"}},
	{"Vihaan Mehta", "10B002", "Class 10B", []string{"Mathematics", "Physics"}},
	{"Saanvi Iyer", "10B003", "Class 10B", []string{"Mathematics", "Physics"}},
	{"Arjun Nair", "9A001", "Class 9A", []string{"Mathematics", "Physics", "Chemistry"}},
	{"Myra Joshi", "9A002", "Class 9A", []string{"Mathematics", "Physics", "Chemistry"}},
	{"Kabir Das", "9A003", "Class 9A", []string{"Mathematics", "Physics"}},
}

func (s *seedService) Seed(ctx context.Context, token string) (SeedSummary, error) {
	if !s.enabled {
		return SeedSummary{}, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return SeedSummary{}, ErrSeedUnauthorized
	}

	var summary SeedSummary

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return SeedSummary{}, err
	}

	for _, f := range seedFaculties {
		faculty, err := s.faculty.GetByEmail(ctx, f.email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			faculty = models.Faculty{
				Name:       f.name,
				Email:      f.email,
				EmployeeID: f.employeeID,
				Password:   string(hash),
			}
			if err := s.faculty.Create(ctx, &faculty); err != nil {
				return summary, err
			}
			summary.Faculty++
		} else if err != nil {
			return summary, err
		}

		for _, pair := range f.assignments {
			assignment := models.FacultyAssignment{
				FacultyID: faculty.ID,
				ClassName: pair[0],
				Subject:   pair[1],
			}
			if err := s.faculty.CreateAssignment(ctx, &assignment); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return summary, err
			}
			summary.Assignments++
		}
	}

	for _, st := range seedStudents {
		student := models.Student{
			Name:      st.name,
			StudentID: st.studentID,
			ClassName: st.className,
		}
		if err := s.students.Create(ctx, &student); err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return summary, err
			}
			// Already present; resolve the row so enrollments can attach.
			existing, lookupErr := s.students.GetByStudentID(ctx, st.studentID)
			if lookupErr != nil {
				return summary, lookupErr
			}
			student = existing
		} else {
			summary.Students++
		}

		for _, subject := range st.subjects {
			enrollment := models.StudentEnrollment{
				StudentID: student.ID,
				Subject:   subject,
			}
			if err := s.students.CreateEnrollment(ctx, &enrollment); err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					continue
				}
				return summary, err
			}
			summary.Enrollments++
		}
	}

	s.logger.Info().
		Int("faculty", summary.Faculty).
		Int("students", summary.Students).
		Int("assignments", summary.Assignments).
		Int("enrollments", summary.Enrollments).
		Msg("reference dataset seeded")

	return summary, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	provided := strings.TrimSpace(token)
	if len(expected) != len(provided) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
