package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/wandering/emailpassword-go/internal/crypto"
	"github.com/wandering/emailpassword-go/internal/model"
)

var ErrLengthTooLong = errors.New("password length exceeds the allowed maximum")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	gen       *crypto.Generator
	maxLength int
}

// NewGeneratorService creates a new GeneratorService. A maxLength of zero
// or less disables the length cap.
func NewGeneratorService(gen *crypto.Generator, maxLength int) *GeneratorService {
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &GeneratorService{gen: gen, maxLength: maxLength}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := ResolveLength(req.Length)
	if s.maxLength > 0 && length > s.maxLength {
		return model.GenerateResponse{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.maxLength)
	}

	flags := crypto.Flags{
		Numbers:   req.Numbers,
		Special:   req.Special,
		Alphabets: req.Alphabets,
	}
	password := s.gen.Generate(flags.Options(length))

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}, nil
}

// ResolveLength turns a decoded JSON length into a character count. Missing
// and non-integer values give crypto.DefaultLength; values beyond the int32
// range are clamped.
func ResolveLength(v any) int {
	var f float64
	switch n := v.(type) {
	case int:
		return n
	case int64:
		f = float64(n)
	case float64:
		f = n
	default:
		return crypto.DefaultLength
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return crypto.DefaultLength
	}
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}
