package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v3"

	"chat_commerce/internal/common"
	"chat_commerce/internal/logger"
)

// SignatureMiddleware xác thực chữ ký X-Hub-Signature-256 của webhook Facebook.
// Chữ ký được tính bằng HMAC-SHA256 trên RAW BODY với app secret, prefix "sha256=".
//
// QUAN TRỌNG: nếu appSecret rỗng thì middleware chạy ở chế độ DEGRADED:
// mọi request được cho qua KHÔNG kiểm tra chữ ký, và mỗi request đều được
// log cảnh báo. Chỉ dùng chế độ này cho môi trường dev/test.
func SignatureMiddleware(appSecret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if appSecret == "" {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"path": c.Path(),
				"ip":   c.IP(),
			}).Warn("FB_APP_SECRET chưa được cấu hình - BỎ QUA kiểm tra chữ ký webhook")
			return c.Next()
		}

		sigHeader := c.Get("X-Hub-Signature-256")
		if sigHeader == "" {
			HandleErrorResponse(c, common.ErrSignatureMissing)
			return nil
		}

		if !ValidSignature(appSecret, c.Body(), sigHeader) {
			logger.GetWebhookLogger().WithFields(map[string]interface{}{
				"path": c.Path(),
				"ip":   c.IP(),
			}).Warn("Chữ ký webhook không hợp lệ")
			HandleErrorResponse(c, common.ErrSignatureInvalid)
			return nil
		}

		return c.Next()
	}
}

// ValidSignature kiểm tra header "sha256=<hex>" có đúng là HMAC-SHA256
// của body với appSecret không. So sánh constant-time.
func ValidSignature(appSecret string, body []byte, sigHeader string) bool {
	expectedHex, found := strings.CutPrefix(sigHeader, "sha256=")
	if !found {
		return false
	}
	expected, err := hex.DecodeString(expectedHex)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(appSecret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), expected)
}
