package handler

import (
	"net/http"

	"github.com/wandering/emailpassword-go/internal/model"
	"github.com/wandering/emailpassword-go/internal/service"
)

// EmailHandler handles HTTP requests for address validation.
type EmailHandler struct {
	service *service.EmailService
}

// NewEmailHandler creates a new EmailHandler.
func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{service: svc}
}

// HandleValidate handles POST /api/v1/email/validate requests. Any JSON
// value is accepted as the candidate; a malformed candidate is a negative
// verdict, not a bad request.
func (h *EmailHandler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	var req model.ValidateEmailRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Validate(req))
}
