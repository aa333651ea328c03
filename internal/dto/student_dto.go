package dto

import (
	"time"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// StudentListRequest carries the roster query parameters.
type StudentListRequest struct {
	ClassName string `json:"class_name" validate:"required"`
	Subject   string `json:"subject" validate:"required"`
}

// StudentResponse is the serialized representation of a student.
type StudentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StudentID string    `json:"student_id"`
	ClassName string    `json:"class_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStudentResponse converts a model into a DTO.
func NewStudentResponse(model models.Student) StudentResponse {
	return StudentResponse{
		ID:        model.ID,
		Name:      model.Name,
		StudentID: model.StudentID,
		ClassName: model.ClassName,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewStudentResponseSlice converts a slice of models into DTOs.
func NewStudentResponseSlice(students []models.Student) []StudentResponse {
	responses := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, NewStudentResponse(student))
	}

	return responses
}
