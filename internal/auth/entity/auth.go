package entity

import (
	"fmt"
	"time"
)

// OtpRecord is the stored one-time passcode for a contact number.
//
// There is at most one live record per contact; issuing a new code overwrites
// the previous one. Expiry is enforced by the cache TTL, IssuedAt is kept for
// diagnostics.
type OtpRecord struct {
	ContactNumber string    `json:"contact_number"`
	Code          string    `json:"code"`
	IssuedAt      time.Time `json:"issued_at"`
}

// ProviderError is a failure reported by the Whatsup provider.
//
// Status and Title come from the provider's problem document and are passed
// through to the client verbatim.
type ProviderError struct {
	Status int
	Title  string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Status, e.Title)
}
