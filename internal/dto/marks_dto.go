package dto

import (
	"time"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// MarksUpsertRequest describes the payload for recording marks. StudentID is
// the student row UUID. Components are optional; a component absent from the
// payload keeps its stored value.
type MarksUpsertRequest struct {
	StudentID string   `json:"student_id" validate:"required"`
	ClassName string   `json:"class_name" validate:"required"`
	Subject   string   `json:"subject" validate:"required"`
	CT1       *float64 `json:"ct1"`
	Insem     *float64 `json:"insem"`
	CT2       *float64 `json:"ct2"`
}

// MarksResponse is the serialized marks record including the derived total.
type MarksResponse struct {
	ID           string    `json:"id"`
	StudentID    string    `json:"student_id"`
	ClassName    string    `json:"class_name"`
	Subject      string    `json:"subject"`
	FacultyEmail string    `json:"faculty_email"`
	CT1          *float64  `json:"ct1"`
	Insem        *float64  `json:"insem"`
	CT2          *float64  `json:"ct2"`
	Total        *float64  `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MarksSavedResponse matches the original save-marks wire shape.
type MarksSavedResponse struct {
	Message string        `json:"message"`
	Marks   MarksResponse `json:"marks"`
}

// NewMarksResponse converts a model into a DTO.
func NewMarksResponse(model models.Marks) MarksResponse {
	return MarksResponse{
		ID:           model.ID,
		StudentID:    model.StudentID,
		ClassName:    model.ClassName,
		Subject:      model.Subject,
		FacultyEmail: model.FacultyEmail,
		CT1:          model.CT1,
		Insem:        model.Insem,
		CT2:          model.CT2,
		Total:        model.Total,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
