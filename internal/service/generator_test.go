package service

import (
	"errors"
	"math"
	"testing"

	"github.com/wandering/emailpassword-go/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil, 0)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 8 {
		t.Errorf("expected length 8, got %d", resp.Length)
	}
	if len(resp.Password) != 8 {
		t.Errorf("expected password length 8, got %d", len(resp.Password))
	}
}

func TestGenerate_AlphabetsOnly(t *testing.T) {
	svc := NewGeneratorService(nil, 0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:  float64(32),
		Numbers: boolPtr(false),
		Special: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in alphabets-only password", c)
		}
	}
}

func TestGenerate_NumbersOnly(t *testing.T) {
	svc := NewGeneratorService(nil, 0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    float64(20),
		Special:   boolPtr(false),
		Alphabets: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range resp.Password {
		if c < '0' || c > '9' {
			t.Errorf("unexpected character %q in numbers-only password", c)
		}
	}
}

func TestGenerate_NoCharacterTypesFallsBack(t *testing.T) {
	svc := NewGeneratorService(nil, 0)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    float64(16),
		Numbers:   boolPtr(false),
		Special:   boolPtr(false),
		Alphabets: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Fatalf("expected length 16, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in fallback password", c)
		}
	}
}

func TestGenerate_NonPositiveLength(t *testing.T) {
	svc := NewGeneratorService(nil, 0)
	for _, length := range []any{float64(0), float64(-5)} {
		resp, err := svc.Generate(model.GenerateRequest{Length: length})
		if err != nil {
			t.Fatalf("unexpected error for length %v: %v", length, err)
		}
		if resp.Password != "" || resp.Length != 0 {
			t.Errorf("expected empty password for length %v, got %q", length, resp.Password)
		}
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := NewGeneratorService(nil, 128)
	_, err := svc.Generate(model.GenerateRequest{Length: float64(200)})
	if !errors.Is(err, ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestResolveLength(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"missing", nil, 8},
		{"int", 12, 12},
		{"int64", int64(12), 12},
		{"integral float", float64(24), 24},
		{"fractional float", 3.5, 8},
		{"string", "12", 8},
		{"bool", true, 8},
		{"nan", math.NaN(), 8},
		{"infinity", math.Inf(1), 8},
		{"negative", float64(-3), -3},
		{"huge", 1e300, math.MaxInt32},
		{"huge negative", -1e300, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLength(tt.in); got != tt.want {
				t.Errorf("ResolveLength(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}
