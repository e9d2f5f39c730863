package service

import (
	"github.com/wandering/emailpassword-go/internal/email"
	"github.com/wandering/emailpassword-go/internal/model"
)

// EmailService handles address validation.
type EmailService struct{}

// NewEmailService creates a new EmailService.
func NewEmailService() *EmailService {
	return &EmailService{}
}

// Validate reports whether the candidate is a well-formed address. Valid
// candidates are echoed back in normalized form.
func (s *EmailService) Validate(req model.ValidateEmailRequest) model.ValidateEmailResponse {
	if !email.IsValid(req.Email) {
		return model.ValidateEmailResponse{Valid: false}
	}

	raw, _ := req.Email.(string)
	normalized, _ := email.Normalize(raw)
	return model.ValidateEmailResponse{
		Valid:      true,
		Normalized: normalized,
	}
}
