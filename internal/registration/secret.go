package registration

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// secretByteLen is the raw length of generated secrets; hex-encoding doubles it.
const secretByteLen = 16

// NewSecret generates a cryptographically random hex-encoded secret.
func NewSecret() (string, error) {
	buf := make([]byte, secretByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
