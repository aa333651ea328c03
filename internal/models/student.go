package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student represents a learner enrolled in one class and multiple subjects.
type Student struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	StudentID string    `gorm:"size:50;uniqueIndex;not null" json:"student_id"`
	ClassName string    `gorm:"size:100;not null;index" json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Enrollments []StudentEnrollment `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (s *Student) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// StudentEnrollment records that a student is registered for a subject.
type StudentEnrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_enrollment;index" json:"student_id"`
	Subject   string    `gorm:"size:100;not null;uniqueIndex:uniq_enrollment;index" json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
