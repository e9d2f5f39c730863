package model

// ValidateEmailRequest carries any JSON value; only strings can be valid.
type ValidateEmailRequest struct {
	Email any `json:"email"`
}

// ValidateEmailResponse is the verdict for a single candidate.
type ValidateEmailResponse struct {
	Valid      bool   `json:"valid"`
	Normalized string `json:"normalized,omitempty"`
}
