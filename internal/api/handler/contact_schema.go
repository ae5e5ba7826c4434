package handler

// contactRequest binds and validates a contact-form submission.
type contactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=6"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

// contactResponse acknowledges an accepted submission.
type contactResponse struct {
	Status string `json:"status"`
}
