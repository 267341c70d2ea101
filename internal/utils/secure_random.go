package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const usernameSuffixBytes = 3

// WithRandomSuffix appends "_" and six random hex characters to base, cutting
// base short so the result fits in maxLen bytes.
func WithRandomSuffix(base string, maxLen int) (string, error) {
	b := make([]byte, usernameSuffixBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	suffix := "_" + hex.EncodeToString(b)

	keep := maxLen - len(suffix)
	if keep < 0 {
		return "", fmt.Errorf("maxLen %d leaves no room for the suffix", maxLen)
	}
	if len(base) > keep {
		base = base[:keep]
	}
	return base + suffix, nil
}
