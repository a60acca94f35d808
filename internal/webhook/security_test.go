package webhook_test

import (
	"strings"
	"testing"

	"git-telegram-bridge/internal/webhook"
)

func TestVerifySignature(t *testing.T) {
	body := []byte(`{"repository": {"full_name": "alice/repo"}, "ref": "refs/heads/main"}`)
	const secret = "0011223344556677"

	t.Run("Round trip", func(t *testing.T) {
		sig := webhook.SignBody(body, secret)
		if err := webhook.VerifySignature(body, secret, sig); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Prefix is optional", func(t *testing.T) {
		sig := strings.TrimPrefix(webhook.SignBody(body, secret), "sha256=")
		if err := webhook.VerifySignature(body, secret, sig); err != nil {
			t.Fatalf("unexpected error without prefix: %v", err)
		}
	})

	t.Run("Flipped body byte fails", func(t *testing.T) {
		sig := webhook.SignBody(body, secret)
		tampered := append([]byte(nil), body...)
		tampered[0] ^= 0x01
		if err := webhook.VerifySignature(tampered, secret, sig); err == nil {
			t.Errorf("expected failure on tampered body")
		}
	})

	t.Run("Wrong secret fails", func(t *testing.T) {
		sig := webhook.SignBody(body, secret)
		if err := webhook.VerifySignature(body, "7766554433221100", sig); err == nil {
			t.Errorf("expected failure with wrong secret")
		}
	})

	t.Run("Flipped signature byte fails", func(t *testing.T) {
		sig := webhook.SignBody(body, secret)
		// Flip the last hex digit
		last := sig[len(sig)-1]
		flip := byte('0')
		if last == '0' {
			flip = '1'
		}
		tampered := sig[:len(sig)-1] + string(flip)
		if err := webhook.VerifySignature(body, secret, tampered); err == nil {
			t.Errorf("expected failure on tampered signature")
		}
	})

	t.Run("Empty secret fails", func(t *testing.T) {
		sig := webhook.SignBody(body, secret)
		if err := webhook.VerifySignature(body, "", sig); err == nil {
			t.Errorf("expected failure with empty secret")
		}
	})

	t.Run("Empty signature fails", func(t *testing.T) {
		if err := webhook.VerifySignature(body, secret, ""); err == nil {
			t.Errorf("expected failure with empty signature")
		}
	})

	t.Run("Non-hex signature fails", func(t *testing.T) {
		if err := webhook.VerifySignature(body, secret, "sha256=not-hex-at-all"); err == nil {
			t.Errorf("expected failure with non-hex signature")
		}
	})
}
