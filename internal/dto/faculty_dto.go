package dto

import (
	"time"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// FacultyResponse is the serialized faculty profile. The password hash is
// deliberately not part of this structure.
type FacultyResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	EmployeeID string    `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewFacultyResponse converts a model into a DTO.
func NewFacultyResponse(model models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:         model.ID,
		Name:       model.Name,
		Email:      model.Email,
		EmployeeID: model.EmployeeID,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// AssignmentResponse is one class/subject pair taught by a faculty.
type AssignmentResponse struct {
	ID        uint      `json:"id"`
	ClassName string    `json:"class_name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAssignmentResponseSlice converts assignment models into DTOs.
func NewAssignmentResponseSlice(assignments []models.FacultyAssignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, AssignmentResponse{
			ID:        assignment.ID,
			ClassName: assignment.ClassName,
			Subject:   assignment.Subject,
			CreatedAt: assignment.CreatedAt,
		})
	}

	return responses
}
