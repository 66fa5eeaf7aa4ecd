// Package router đăng ký các route thuộc domain Webhook: Facebook webhook (public,
// chữ ký bảo vệ POST) và WebhookLog (tra cứu chẩn đoán).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"chat_commerce/internal/api/middleware"
	apirouter "chat_commerce/internal/api/router"
	webhookhdl "chat_commerce/internal/api/webhook/handler"
	"chat_commerce/internal/global"
)

// Register đăng ký tất cả route webhook lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	fbWebhookHandler, err := webhookhdl.NewFacebookWebhookHandler()
	if err != nil {
		return fmt.Errorf("create facebook webhook handler: %w", err)
	}

	// GET verify không cần chữ ký; hai POST được bảo vệ bởi X-Hub-Signature-256
	signatureMiddleware := middleware.SignatureMiddleware(global.MongoDB_ServerConfig.FbAppSecret)
	v1.Get("/facebook/webhook", fbWebhookHandler.HandleVerify)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook/webhook", "POST", "/", []fiber.Handler{signatureMiddleware}, fbWebhookHandler.HandleWebhook)
	apirouter.RegisterRouteWithMiddleware(v1, "/facebook/webhook", "POST", "/rules", []fiber.Handler{signatureMiddleware}, fbWebhookHandler.HandleRuleWebhook)

	webhookLogHandler, err := webhookhdl.NewWebhookLogHandler()
	if err != nil {
		return fmt.Errorf("create webhook log handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/webhook-log", webhookLogHandler, apirouter.ReadOnlyConfig)

	return nil
}
