// Package middleware - Test ValidSignature: round-trip với digest tự tính, các dạng header hỏng.
package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidSignature_RoundTrip(t *testing.T) {
	body := []byte(`{"object":"page","entry":[]}`)
	header := signBody("app-secret", body)
	assert.True(t, ValidSignature("app-secret", body, header))
}

func TestValidSignature_WrongSecret(t *testing.T) {
	body := []byte(`{"object":"page"}`)
	header := signBody("other-secret", body)
	assert.False(t, ValidSignature("app-secret", body, header))
}

func TestValidSignature_TamperedBody(t *testing.T) {
	body := []byte(`{"object":"page"}`)
	header := signBody("app-secret", body)
	assert.False(t, ValidSignature("app-secret", []byte(`{"object":"PAGE"}`), header))
}

func TestValidSignature_MalformedHeader(t *testing.T) {
	body := []byte(`{}`)
	assert.False(t, ValidSignature("app-secret", body, "sha1=abcdef"), "thiếu prefix sha256=")
	assert.False(t, ValidSignature("app-secret", body, "sha256=not-hex"), "hex hỏng")
	assert.False(t, ValidSignature("app-secret", body, ""), "header rỗng")
}
