package models

// LoginRequest carries the credentials for POST /api/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate checks the login request fields
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// StatusPatchRequest is the body of PATCH /api/{resource}/{id}/status
type StatusPatchRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate checks the status patch body
func (r *StatusPatchRequest) Validate() error {
	return validate.Struct(r)
}
