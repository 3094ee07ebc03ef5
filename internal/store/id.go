package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
)

// shortIDBytes is the number of random bytes behind a user ID. Six bytes
// hex-encode to twelve characters.
const shortIDBytes = 6

var (
	// ErrIDEmpty is returned when an ID is empty.
	ErrIDEmpty = errors.New("id must not be empty")

	// ErrIDFormat is returned when an ID is not 12 lowercase hex characters.
	ErrIDFormat = errors.New("id must be 12 lowercase hexadecimal characters")

	idPattern = regexp.MustCompile(`^[0-9a-f]{12}$`)
)

// NewShortHexID returns a fresh cryptographically random user ID.
func NewShortHexID() (string, error) {
	b := make([]byte, shortIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ValidateID checks that id conforms to the short hex format. It does NOT
// check existence; that requires a lookup against the users collection.
func ValidateID(id string) error {
	if id == "" {
		return ErrIDEmpty
	}
	if !idPattern.MatchString(id) {
		return ErrIDFormat
	}
	return nil
}
