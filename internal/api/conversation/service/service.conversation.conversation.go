package convsvc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "chat_commerce/internal/api/base/service"
	convmodels "chat_commerce/internal/api/conversation/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
)

// ConversationService là cấu trúc chứa các phương thức liên quan đến trạng thái hội thoại
type ConversationService struct {
	*basesvc.BaseServiceMongoImpl[convmodels.Conversation]
}

// NewConversationService tạo mới ConversationService
func NewConversationService() (*ConversationService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Conversations)
	if !exist {
		return nil, fmt.Errorf("failed to get conversations collection: %v", common.ErrNotFound)
	}
	return &ConversationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[convmodels.Conversation](coll),
	}, nil
}

// GetOrCreate tìm hội thoại theo (pageId, senderId), chưa có thì tạo mới
// với bước vào ASK_PRODUCT và TempData rỗng.
func (s *ConversationService) GetOrCreate(ctx context.Context, pageID string, senderID string) (convmodels.Conversation, error) {
	filter := bson.M{"pageId": pageID, "senderId": senderID}
	var conv convmodels.Conversation
	err := s.Collection().FindOne(ctx, filter).Decode(&conv)
	if err == nil {
		return conv, nil
	}
	if err != mongo.ErrNoDocuments {
		return conv, common.ConvertMongoError(err)
	}

	// Upsert để hai webhook đua nhau tạo cùng một hội thoại không sinh bản ghi đôi
	// (collection có unique index trên (pageId, senderId))
	now := time.Now().UnixMilli()
	update := bson.M{
		"$setOnInsert": bson.M{
			"pageId":    pageID,
			"senderId":  senderID,
			"step":      string(convmodels.StepAskProduct),
			"tempData":  bson.M{},
			"createdAt": now,
			"updatedAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err = s.Collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&conv)
	if err != nil {
		return conv, common.ConvertMongoError(err)
	}
	return conv, nil
}

// AdvanceStep cập nhật hội thoại sang bước kế tiếp và merge save vào TempData.
// Cập nhật có điều kiện: filter bao gồm cả bước mà engine đã tiêu thụ, nên nếu
// một webhook song song đã kịp chuyển bước trước thì update trượt và trả về
// ErrStepConflict để caller đọc lại và chạy lại engine.
func (s *ConversationService) AdvanceStep(ctx context.Context, conv convmodels.Conversation, next convmodels.Step, save map[string]string) (convmodels.Conversation, error) {
	set := bson.M{
		"step":      string(next),
		"updatedAt": time.Now().UnixMilli(),
	}
	// Merge từng key: key cũ giữ nguyên trừ khi bị ghi đè
	for k, v := range save {
		set["tempData."+k] = v
	}

	filter := bson.M{
		"pageId":   conv.PageId,
		"senderId": conv.SenderId,
		"step":     conv.Step,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated convmodels.Conversation
	err := s.Collection().FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return updated, common.ErrStepConflict
		}
		return updated, common.ConvertMongoError(err)
	}
	return updated, nil
}

// DeleteByKey xóa hội thoại theo (pageId, senderId). Gọi khi hội thoại hoàn tất.
// Hội thoại đã bị xóa trước đó không phải lỗi (reprocess là no-op).
func (s *ConversationService) DeleteByKey(ctx context.Context, pageID string, senderID string) error {
	err := s.BaseServiceMongoImpl.DeleteOne(ctx, bson.M{"pageId": pageID, "senderId": senderID})
	if err != nil && err != common.ErrNotFound {
		return err
	}
	return nil
}
