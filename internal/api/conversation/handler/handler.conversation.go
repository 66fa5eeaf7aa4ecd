package convhdl

import (
	"fmt"

	basehdl "chat_commerce/internal/api/base/handler"
	convmodels "chat_commerce/internal/api/conversation/models"
	convsvc "chat_commerce/internal/api/conversation/service"
)

// ConversationHandler xử lý các yêu cầu tra cứu trạng thái hội thoại.
// Hội thoại do pipeline sở hữu nên surface admin chỉ đọc.
type ConversationHandler struct {
	*basehdl.BaseHandler[convmodels.Conversation, convmodels.Conversation, convmodels.Conversation]
	ConversationService *convsvc.ConversationService
}

// NewConversationHandler khởi tạo ConversationHandler mới
func NewConversationHandler() (*ConversationHandler, error) {
	service, err := convsvc.NewConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation service: %v", err)
	}
	hdl := &ConversationHandler{ConversationService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[convmodels.Conversation, convmodels.Conversation, convmodels.Conversation](service)
	return hdl, nil
}
