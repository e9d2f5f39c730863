package service

import (
	"testing"

	"github.com/wandering/emailpassword-go/internal/model"
)

func TestValidateEmail(t *testing.T) {
	svc := NewEmailService()

	tests := []struct {
		name           string
		input          any
		wantValid      bool
		wantNormalized string
	}{
		{"valid", "user@example.com", true, "user@example.com"},
		{"normalized", "  User.Name+Tag@Example.COM ", true, "user.name+tag@example.com"},
		{"invalid", "user..name@example.com", false, ""},
		{"null", nil, false, ""},
		{"number", float64(42), false, ""},
		{"object", map[string]any{"email": "user@example.com"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := svc.Validate(model.ValidateEmailRequest{Email: tt.input})
			if resp.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v", resp.Valid, tt.wantValid)
			}
			if resp.Normalized != tt.wantNormalized {
				t.Errorf("Normalized = %q, want %q", resp.Normalized, tt.wantNormalized)
			}
		})
	}
}
