package github

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureHeader is the header GitHub sends the payload digest in.
const SignatureHeader = "X-Hub-Signature-256"

// Sign computes the hex-encoded "sha256=<hmac>" digest of a payload.
func Sign(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a webhook signature header against the payload.
// Comparison is constant time.
func VerifySignature(payload []byte, secret, signature string) bool {
	if signature == "" {
		return false
	}
	return hmac.Equal([]byte(Sign(payload, secret)), []byte(signature))
}
