package otp

import (
	"crypto/rand"
	"math/big"
)

// DefaultLength is the code length used when the configured length is non-positive.
const DefaultLength = 10

const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generator mints one-time passcodes for a contact number.
type Generator interface {
	// Generate returns a fresh code for the contact number.
	Generate(contactNumber string) string
}

// Alphanumeric generates random mixed-case alphanumeric codes.
type Alphanumeric struct {
	length    int
	overrides map[string]string
}

// NewAlphanumeric constructs a generator producing codes of the given length.
//
// overrides maps contact numbers to fixed codes that are returned instead of
// a random one. A nil map disables overrides.
func NewAlphanumeric(length int, overrides map[string]string) *Alphanumeric {
	if length < 1 {
		length = DefaultLength
	}

	return &Alphanumeric{
		length:    length,
		overrides: overrides,
	}
}

// Generate returns the override for the contact number if one is configured,
// otherwise a random alphanumeric code.
func (a *Alphanumeric) Generate(contactNumber string) string {
	if code, ok := a.overrides[contactNumber]; ok {
		return code
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, a.length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform entropy source is broken.
			panic(err)
		}
		buf[i] = alphabet[n.Int64()]
	}

	return string(buf)
}
