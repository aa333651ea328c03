package dto

// LoginRequest describes the credentials submitted to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token and the authenticated
// faculty profile, matching the original wire shape.
type LoginResponse struct {
	Token   string          `json:"token"`
	Faculty FacultyResponse `json:"faculty"`
}
