package shortener

import (
	"fmt"
	"net/url"

	"github.com/jaevor/go-nanoid"
)

// Alphabet is the set of characters short codes are drawn from.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength is the length of generated short codes unless configured otherwise.
const DefaultCodeLength = 6

// CodeGenerator produces a random short code. Codes are not guaranteed unique.
type CodeGenerator func() Code

// NewCodeGenerator returns a concurrency-safe generator of codes with the given length.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, fmt.Errorf("code generator with length %d: %w", length, err)
	}

	return func() Code {
		return Code(gen())
	}, nil
}

// GenerateCode returns a single random code of the given length.
func GenerateCode(length int) (Code, error) {
	gen, err := NewCodeGenerator(length)
	if err != nil {
		return "", err
	}

	return gen(), nil
}

// IsValidURL reports whether candidate is an http or https URL with a non-empty host.
func IsValidURL(candidate string) bool {
	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	return u.Host != ""
}
