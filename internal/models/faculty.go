package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Faculty represents a teaching staff member who can record marks.
// Password always holds a bcrypt hash, never plaintext.
type Faculty struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	EmployeeID string    `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Assignments []FacultyAssignment `gorm:"foreignKey:FacultyID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (f *Faculty) BeforeCreate(*gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FacultyAssignment records that a faculty teaches a class/subject pair.
// A pair can be assigned to the same faculty only once.
type FacultyAssignment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FacultyID string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_assignment;index" json:"faculty_id"`
	ClassName string    `gorm:"size:100;not null;uniqueIndex:uniq_assignment;index:idx_assignment_class_subject" json:"class_name"`
	Subject   string    `gorm:"size:100;not null;uniqueIndex:uniq_assignment;index:idx_assignment_class_subject" json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}
