package convsvc

import (
	"context"
	"fmt"

	basesvc "chat_commerce/internal/api/base/service"
	convmodels "chat_commerce/internal/api/conversation/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
)

// MessageService là cấu trúc chứa các phương thức liên quan đến log tin nhắn
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[convmodels.Message]
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Messages)
	if !exist {
		return nil, fmt.Errorf("failed to get messages collection: %v", common.ErrNotFound)
	}
	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[convmodels.Message](coll),
	}, nil
}

// LogInbound ghi log tin nhắn khách gửi vào trang
func (s *MessageService) LogInbound(ctx context.Context, pageID string, senderID string, body string) (convmodels.Message, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, convmodels.Message{
		PageId:    pageID,
		SenderId:  senderID,
		Body:      body,
		Direction: convmodels.DirectionIn,
	})
}

// LogOutbound ghi log tin trả lời hệ thống gửi cho khách
func (s *MessageService) LogOutbound(ctx context.Context, pageID string, senderID string, body string) (convmodels.Message, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, convmodels.Message{
		PageId:    pageID,
		SenderId:  senderID,
		Body:      body,
		Direction: convmodels.DirectionOut,
	})
}
