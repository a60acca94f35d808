package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// VerifySignature verifies a GitHub webhook signature against the raw request
// body using the registration's secret as HMAC-SHA256 key.
//
// body must be the exact bytes read off the wire, captured before any JSON
// decoding: re-encoding a decoded payload is not guaranteed to reproduce the
// original byte sequence (key order, whitespace), and a signature computed
// over it would be wrong.
//
// The "sha256=" prefix GitHub puts in X-Hub-Signature-256 is optional here.
func VerifySignature(body []byte, secret, signature string) error {
	if secret == "" || signature == "" {
		return ErrAuthentication
	}

	signature = strings.TrimPrefix(signature, "sha256=")

	// Decode hex to bytes for more secure comparison
	expectedSig, err := hex.DecodeString(signature)
	if err != nil {
		return ErrAuthentication
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	actualSig := mac.Sum(nil)

	// Constant-time comparison on raw bytes
	if !hmac.Equal(expectedSig, actualSig) {
		return ErrAuthentication
	}

	return nil
}

// SignBody computes the hex HMAC-SHA256 of body with the given secret,
// "sha256="-prefixed the way GitHub sends it. Used by tests and setup tooling.
func SignBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
