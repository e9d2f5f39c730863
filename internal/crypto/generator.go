package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	specialChars   = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	alphabetChars = uppercaseChars + lowercaseChars

	// DefaultLength is the password length used when none is given.
	DefaultLength = 8
)

// Source yields uniformly distributed integers in [0, n) for n > 0.
// A Source shared by concurrent generators must be safe for concurrent use.
type Source interface {
	IntN(n int) int
}

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Alphabets bool
	Numbers   bool
	Special   bool
}

// DefaultOptions returns a fresh default configuration: 8 characters drawn
// from every class.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Alphabets: true,
		Numbers:   true,
		Special:   true,
	}
}

// Flags is the caller-facing class selection. A nil Flags, or a nil field
// inside one, means the class is enabled.
type Flags struct {
	Numbers   *bool
	Special   *bool
	Alphabets *bool
}

// Options resolves the flags into GeneratorOptions for length.
func (f *Flags) Options(length int) GeneratorOptions {
	opts := DefaultOptions()
	opts.Length = length
	if f == nil {
		return opts
	}
	opts.Numbers = boolOrDefault(f.Numbers, true)
	opts.Special = boolOrDefault(f.Special, true)
	opts.Alphabets = boolOrDefault(f.Alphabets, true)
	return opts
}

func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

// Pool returns the characters a password is drawn from, in the order
// alphabets, numbers, special. With no class selected it falls back to the
// alphabetic pool, so it is never empty.
func Pool(opts GeneratorOptions) string {
	var pool string
	if opts.Alphabets {
		pool += alphabetChars
	}
	if opts.Numbers {
		pool += numberChars
	}
	if opts.Special {
		pool += specialChars
	}

	if pool == "" {
		pool = alphabetChars
	}
	return pool
}

// Generator draws passwords from a Source.
type Generator struct {
	src Source
}

// NewGenerator creates a Generator reading from src, or from crypto/rand
// when src is nil.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = CryptoSource()
	}
	return &Generator{src: src}
}

var defaultGenerator = NewGenerator(nil)

// Generate creates a password with the package's crypto/rand backed generator.
func Generate(opts GeneratorOptions) string {
	return defaultGenerator.Generate(opts)
}

// Generate returns opts.Length characters, each drawn independently and
// uniformly from Pool(opts). Nothing guarantees that every selected class
// shows up. A non-positive length yields "".
func (g *Generator) Generate(opts GeneratorOptions) string {
	if opts.Length <= 0 {
		return ""
	}

	pool := Pool(opts)

	var sb strings.Builder
	sb.Grow(opts.Length)
	for i := 0; i < opts.Length; i++ {
		sb.WriteByte(pool[g.src.IntN(len(pool))])
	}
	return sb.String()
}

type cryptoSource struct{}

// CryptoSource returns a Source backed by crypto/rand. It is safe for
// concurrent use.
func CryptoSource() Source {
	return cryptoSource{}
}

// IntN uses rejection sampling: values below 2^64 mod n are redrawn so
// every residue is equally likely.
func (cryptoSource) IntN(n int) int {
	if n <= 0 {
		panic("crypto: IntN called with non-positive n")
	}

	bound := uint64(n)
	threshold := -bound % bound

	var buf [8]byte
	for {
		rand.Read(buf[:])
		v := binary.LittleEndian.Uint64(buf[:])
		if v >= threshold {
			return int(v % bound)
		}
	}
}
