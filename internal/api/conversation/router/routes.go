// Package router đăng ký các route tra cứu thuộc domain Conversation: Conversation, Message, Order.
// Các collection này do pipeline webhook ghi nên surface admin chỉ đọc.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	convhdl "chat_commerce/internal/api/conversation/handler"
	apirouter "chat_commerce/internal/api/router"
)

// Register đăng ký tất cả route Conversation lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	conversationHandler, err := convhdl.NewConversationHandler()
	if err != nil {
		return fmt.Errorf("create conversation handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/conversation", conversationHandler, apirouter.ReadOnlyConfig)

	messageHandler, err := convhdl.NewMessageHandler()
	if err != nil {
		return fmt.Errorf("create message handler: %w", err)
	}
	none := []fiber.Handler{}
	apirouter.RegisterRouteWithMiddleware(v1, "/message", "GET", "/find-by-sender/:pageId/:senderId", none, messageHandler.HandleFindBySender)
	r.RegisterCRUDRoutes(v1, "/message", messageHandler, apirouter.ReadOnlyConfig)

	orderHandler, err := convhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/find-by-page-id/:id", none, orderHandler.HandleFindByPageID)
	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadOnlyConfig)

	return nil
}
