package convhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "chat_commerce/internal/api/base/handler"
	convmodels "chat_commerce/internal/api/conversation/models"
	convsvc "chat_commerce/internal/api/conversation/service"
)

// MessageHandler xử lý các yêu cầu tra cứu log tin nhắn (chỉ đọc)
type MessageHandler struct {
	*basehdl.BaseHandler[convmodels.Message, convmodels.Message, convmodels.Message]
	MessageService *convsvc.MessageService
}

// NewMessageHandler khởi tạo MessageHandler mới
func NewMessageHandler() (*MessageHandler, error) {
	service, err := convsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	hdl := &MessageHandler{MessageService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[convmodels.Message, convmodels.Message, convmodels.Message](service)
	return hdl, nil
}

// HandleFindBySender tra toàn bộ tin nhắn của một khách trên một trang, mới nhất trước
func (h *MessageHandler) HandleFindBySender(c fiber.Ctx) error {
	pageID := c.Params("pageId")
	senderID := c.Params("senderId")
	filter := bson.M{"pageId": pageID, "senderId": senderID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	data, err := h.MessageService.Find(context.Background(), filter, opts)
	h.HandleResponse(c, data, err)
	return nil
}
