package models

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Maximum permitted value per score component. CT1 and CT2 are class tests,
// insem is the in-semester examination. All components have a floor of zero.
const (
	MaxCT1   = 30.0
	MaxInsem = 30.0
	MaxCT2   = 70.0
)

// Marks holds the score components recorded for a student in one
// class/subject combination. Exactly one row may exist per combination.
// FacultyEmail references the faculty that recorded the marks; the RESTRICT
// action keeps a referenced faculty from being deleted.
type Marks struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	StudentID    string    `gorm:"type:varchar(36);not null;uniqueIndex:uniq_marks;index" json:"student_id"`
	ClassName    string    `gorm:"size:100;not null;uniqueIndex:uniq_marks;index:idx_marks_class_subject" json:"class_name"`
	Subject      string    `gorm:"size:100;not null;uniqueIndex:uniq_marks;index:idx_marks_class_subject" json:"subject"`
	FacultyEmail string    `gorm:"size:255;not null;index" json:"faculty_email"`
	CT1          *float64  `gorm:"type:decimal(5,2)" json:"ct1"`
	Insem        *float64  `gorm:"type:decimal(5,2)" json:"insem"`
	CT2          *float64  `gorm:"type:decimal(5,2)" json:"ct2"`
	Total        *float64  `gorm:"type:decimal(6,2)" json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Student Student `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Faculty Faculty `gorm:"foreignKey:FacultyEmail;references:Email;constraint:OnDelete:RESTRICT" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (m *Marks) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// RecomputeTotal sums the components that are present. A missing component
// is excluded from the sum, not treated as zero; with no components the
// total itself is absent.
func (m *Marks) RecomputeTotal() {
	var sum float64
	var present bool
	for _, component := range []*float64{m.CT1, m.Insem, m.CT2} {
		if component != nil {
			sum += *component
			present = true
		}
	}

	if !present {
		m.Total = nil
		return
	}

	rounded := math.Round(sum*100) / 100
	m.Total = &rounded
}
