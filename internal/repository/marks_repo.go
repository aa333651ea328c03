package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// MarksRepository persists marks rows keyed by (student, class, subject).
type MarksRepository interface {
	GetByCompositeKey(ctx context.Context, studentRowID, className, subject string) (models.Marks, error)
	// Save runs the find-or-create-then-update inside one transaction. The
	// merge callback receives the existing row (zero-valued on first write)
	// and must return the row to persist. A concurrent insert of the same
	// key surfaces as gorm.ErrDuplicatedKey for the caller to retry.
	Save(ctx context.Context, studentRowID, className, subject string, merge func(existing models.Marks) models.Marks) (models.Marks, error)
}

type marksRepository struct {
	db *gorm.DB
}

// NewMarksRepository constructs a marks repository.
func NewMarksRepository(db *gorm.DB) MarksRepository {
	return &marksRepository{db: db}
}

func (r *marksRepository) GetByCompositeKey(ctx context.Context, studentRowID, className, subject string) (models.Marks, error) {
	var marks models.Marks
	err := r.db.WithContext(ctx).
		First(&marks, "student_id = ? AND class_name = ? AND subject = ?", studentRowID, className, subject).Error
	if err != nil {
		return models.Marks{}, err
	}

	return marks, nil
}

func (r *marksRepository) Save(ctx context.Context, studentRowID, className, subject string, merge func(existing models.Marks) models.Marks) (models.Marks, error) {
	var saved models.Marks

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Marks
		err := tx.First(&existing, "student_id = ? AND class_name = ? AND subject = ?", studentRowID, className, subject).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}

		merged := merge(existing)
		merged.StudentID = studentRowID
		merged.ClassName = className
		merged.Subject = subject

		if existing.ID == "" {
			if err := tx.Create(&merged).Error; err != nil {
				return err
			}
		} else {
			merged.ID = existing.ID
			merged.CreatedAt = existing.CreatedAt
			if err := tx.Save(&merged).Error; err != nil {
				return err
			}
		}

		saved = merged
		return nil
	})
	if err != nil {
		return models.Marks{}, err
	}

	return saved, nil
}
