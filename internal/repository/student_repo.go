package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// StudentRepository provides access to student records and enrollments.
type StudentRepository interface {
	GetByID(ctx context.Context, id string) (models.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (models.Student, error)
	ListByClassAndSubject(ctx context.Context, className, subject string) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
	CreateEnrollment(ctx context.Context, enrollment *models.StudentEnrollment) error
	CountEnrollments(ctx context.Context, studentRowID string) (int64, error)
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) GetByID(ctx context.Context, id string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "id = ?", id).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) GetByStudentID(ctx context.Context, studentID string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "student_id = ?", studentID).Error; err != nil {
		return models.Student{}, err
	}

	return student, nil
}

// ListByClassAndSubject joins enrollments so only students registered for
// the subject are returned, ordered by their business identifier.
func (r *studentRepository) ListByClassAndSubject(ctx context.Context, className, subject string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.WithContext(ctx).
		Joins("JOIN student_enrollments ON student_enrollments.student_id = students.id").
		Where("students.class_name = ? AND student_enrollments.subject = ?", className, subject).
		Order("students.student_id ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// Delete removes a student row; enrollments cascade at the storage layer.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Student{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *studentRepository) CreateEnrollment(ctx context.Context, enrollment *models.StudentEnrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

func (r *studentRepository) CountEnrollments(ctx context.Context, studentRowID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.StudentEnrollment{}).
		Where("student_id = ?", studentRowID).
		Count(&count).Error

	return count, err
}
