package api

// Common request/response structures

// SignupRequest defines the payload for the account creation endpoint.
type SignupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse acknowledges a successful credential check.
// No token or session state is issued.
type LoginResponse struct {
	Email string `json:"email"`
}

// CreateTaskRequest defines the payload for task creation.
// Priority, category and recurrence default when omitted.
type CreateTaskRequest struct {
	Title      string `json:"title"      validate:"required"`
	Priority   string `json:"priority"   validate:"omitempty,oneof=High Medium Low"`
	Category   string `json:"category"`
	DueDate    string `json:"dueDate"    validate:"required"`
	Recurrence string `json:"recurrence" validate:"omitempty,oneof=None Daily Weekly Monthly"`
}

// UpdateTaskRequest defines the payload for a partial task update.
// Omitted fields keep their stored values.
type UpdateTaskRequest struct {
	Title      *string `json:"title"      validate:"omitempty,min=1"`
	Priority   *string `json:"priority"   validate:"omitempty,oneof=High Medium Low"`
	Category   *string `json:"category"`
	DueDate    *string `json:"dueDate"    validate:"omitempty,min=1"`
	Recurrence *string `json:"recurrence" validate:"omitempty,oneof=None Daily Weekly Monthly"`
}
