// Package emailpassword validates email address syntax and generates random
// passwords from selectable character classes.
//
//	emailpassword.IsValidEmail("user.name+tag@example.com") // true
//	emailpassword.GeneratePassword(12, &emailpassword.PasswordOptions{
//		Special: emailpassword.Bool(false),
//	})
//
// Both functions are safe for concurrent use and never panic on bad input.
package emailpassword

import (
	"github.com/wandering/emailpassword-go/internal/crypto"
	"github.com/wandering/emailpassword-go/internal/email"
)

// DefaultLength is the length of DefaultPassword.
const DefaultLength = crypto.DefaultLength

// PasswordOptions selects the character classes of a password. A nil
// *PasswordOptions, or a nil field, means the class is included. With every
// class switched off the password is alphabetic.
type PasswordOptions = crypto.Flags

// Bool returns a pointer to b, for filling PasswordOptions.
func Bool(b bool) *bool { return &b }

// IsValidEmail reports whether input is a string (or *string, or []byte)
// holding a syntactically valid address once trimmed and lowercased. nil,
// other types and blank strings are invalid.
func IsValidEmail(input any) bool {
	return email.IsValid(input)
}

// GeneratePassword returns length characters drawn independently and
// uniformly from the selected classes. length <= 0 gives "".
func GeneratePassword(length int, opts *PasswordOptions) string {
	return crypto.Generate(opts.Options(length))
}

// DefaultPassword returns a DefaultLength password using every class.
func DefaultPassword() string {
	return GeneratePassword(DefaultLength, nil)
}
