package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	payload := []byte(`{"ref":"refs/heads/main"}`)
	secret := "webhook-secret"

	sig := Sign(payload, secret)
	assert.True(t, VerifySignature(payload, secret, sig))
}

func TestVerifySignatureRejectsTamperedPayload(t *testing.T) {
	secret := "webhook-secret"
	sig := Sign([]byte(`{"ref":"refs/heads/main"}`), secret)

	assert.False(t, VerifySignature([]byte(`{"ref":"refs/heads/evil"}`), secret, sig))
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	payload := []byte(`{}`)
	sig := Sign(payload, "other-secret")

	assert.False(t, VerifySignature(payload, "webhook-secret", sig))
}

func TestVerifySignatureRejectsMissingHeader(t *testing.T) {
	assert.False(t, VerifySignature([]byte(`{}`), "webhook-secret", ""))
}
