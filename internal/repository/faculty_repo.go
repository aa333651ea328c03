package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// FacultyRepository provides access to faculty records and their assignments.
type FacultyRepository interface {
	GetByID(ctx context.Context, id string) (models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id string) error
	ListAssignments(ctx context.Context, facultyID string) ([]models.FacultyAssignment, error)
	CreateAssignment(ctx context.Context, assignment *models.FacultyAssignment) error
}

type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository constructs a faculty repository.
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

func (r *facultyRepository) GetByID(ctx context.Context, id string) (models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, "id = ?", id).Error; err != nil {
		return models.Faculty{}, err
	}

	return faculty, nil
}

func (r *facultyRepository) GetByEmail(ctx context.Context, email string) (models.Faculty, error) {
	var faculty models.Faculty
	if err := r.db.WithContext(ctx).First(&faculty, "email = ?", email).Error; err != nil {
		return models.Faculty{}, err
	}

	return faculty, nil
}

func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

// Delete removes a faculty row. Assignments cascade at the storage layer;
// a marks row referencing the faculty email makes the delete fail with
// gorm.ErrForeignKeyViolated instead.
func (r *facultyRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Faculty{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *facultyRepository) ListAssignments(ctx context.Context, facultyID string) ([]models.FacultyAssignment, error) {
	var assignments []models.FacultyAssignment
	err := r.db.WithContext(ctx).
		Where("faculty_id = ?", facultyID).
		Order("class_name ASC, subject ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *facultyRepository) CreateAssignment(ctx context.Context, assignment *models.FacultyAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}
