package emailpassword_test

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	emailpassword "github.com/wandering/emailpassword-go"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, emailpassword.IsValidEmail("user@example.com"))
	assert.True(t, emailpassword.IsValidEmail("user.name+tag@example.com"))
	assert.True(t, emailpassword.IsValidEmail("USER@EXAMPLE.COM"))

	assert.False(t, emailpassword.IsValidEmail("user@example.c"))
	assert.False(t, emailpassword.IsValidEmail("user..name@example.com"))
	assert.False(t, emailpassword.IsValidEmail("userexample.com"))
	assert.False(t, emailpassword.IsValidEmail(nil))
	assert.False(t, emailpassword.IsValidEmail(42))
	assert.False(t, emailpassword.IsValidEmail(""))
	assert.False(t, emailpassword.IsValidEmail("   "))
}

func TestGeneratePasswordLengths(t *testing.T) {
	assert.Len(t, emailpassword.DefaultPassword(), 8)
	for _, n := range []int{1, 2, 8, 33, 500} {
		assert.Len(t, emailpassword.GeneratePassword(n, nil), n)
	}
	assert.Equal(t, "", emailpassword.GeneratePassword(0, nil))
	assert.Equal(t, "", emailpassword.GeneratePassword(-5, nil))
}

func TestGeneratePasswordClasses(t *testing.T) {
	off := emailpassword.Bool(false)
	on := emailpassword.Bool(true)

	tests := []struct {
		name string
		opts *emailpassword.PasswordOptions
		re   *regexp.Regexp
	}{
		{"alphabets only", &emailpassword.PasswordOptions{Numbers: off, Special: off, Alphabets: on}, regexp.MustCompile(`^[A-Za-z]+$`)},
		{"numbers only", &emailpassword.PasswordOptions{Special: off, Alphabets: off}, regexp.MustCompile(`^[0-9]+$`)},
		{"special only", &emailpassword.PasswordOptions{Numbers: off, Alphabets: off}, regexp.MustCompile(`^[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]+$`)},
		{"fallback", &emailpassword.PasswordOptions{Numbers: off, Special: off, Alphabets: off}, regexp.MustCompile(`^[A-Za-z]+$`)},
		{"everything", nil, regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*()_+\-=\[\]{}|;:,.<>?]+$`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, n := range []int{1, 7, 64} {
				assert.Regexp(t, tt.re, emailpassword.GeneratePassword(n, tt.opts))
			}
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if len(emailpassword.GeneratePassword(12, nil)) != 12 {
					t.Error("wrong length under concurrency")
				}
				if !emailpassword.IsValidEmail("user@example.com") {
					t.Error("verdict changed under concurrency")
				}
			}
		}()
	}
	wg.Wait()
}
