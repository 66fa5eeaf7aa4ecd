package shopsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "chat_commerce/internal/api/base/service"
	shopmodels "chat_commerce/internal/api/shop/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
	"chat_commerce/internal/logger"
)

// ReplyRuleService là cấu trúc chứa các phương thức liên quan đến reply rule
type ReplyRuleService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.ReplyRule]
}

// NewReplyRuleService tạo mới ReplyRuleService
func NewReplyRuleService() (*ReplyRuleService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReplyRules)
	if !exist {
		return nil, fmt.Errorf("failed to get reply_rules collection: %v", common.ErrNotFound)
	}
	return &ReplyRuleService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.ReplyRule](coll),
	}, nil
}

// FindEnabledByPageID lấy các rule đang bật của một trang, sắp theo priority tăng dần.
func (s *ReplyRuleService) FindEnabledByPageID(ctx context.Context, pageID string) ([]shopmodels.ReplyRule, error) {
	filter := bson.M{"pageId": pageID, "enabled": true}
	opts := options.Find().SetSort(bson.D{{Key: "priority", Value: 1}})
	rules, err := s.BaseServiceMongoImpl.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	return rules, nil
}

// ChooseReply lấy rule của trang rồi chọn câu trả lời cho text qua MatchReply.
// Trả chuỗi rỗng nghĩa là không trả lời.
func (s *ReplyRuleService) ChooseReply(ctx context.Context, pageID string, text string) (string, error) {
	rules, err := s.FindEnabledByPageID(ctx, pageID)
	if err != nil {
		return "", err
	}
	return MatchReply(rules, text), nil
}

// SeedDefaultRules tạo bộ rule mặc định cho một trang mới đăng ký.
// Gọi từ luồng onboarding sau khi tạo connection. Idempotent: trang đã có rule thì bỏ qua.
func (s *ReplyRuleService) SeedDefaultRules(ctx context.Context, pageID string, businessType string) error {
	count, err := s.BaseServiceMongoImpl.CountDocuments(ctx, bson.M{"pageId": pageID})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	greeting := "Chào bạn! Bạn muốn đặt sản phẩm nào ạ?"
	if businessType == shopmodels.BusinessTypeCargo {
		greeting = "Chào bạn! Bạn cần gửi hàng gì ạ?"
	}

	defaults := []shopmodels.ReplyRule{
		{
			PageId:    pageID,
			Keyword:   "giá",
			Reply:     "Bạn inbox tên sản phẩm để shop báo giá chi tiết nhé!",
			MatchType: shopmodels.MatchTypeContains,
			Priority:  10,
			Enabled:   true,
		},
		{
			PageId:    pageID,
			Reply:     greeting,
			MatchType: shopmodels.MatchTypeFallback,
			Priority:  100,
			Enabled:   true,
		},
	}

	_, err = s.BaseServiceMongoImpl.InsertMany(ctx, defaults)
	if err != nil {
		return err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"pageId":       pageID,
		"businessType": businessType,
		"ruleCount":    len(defaults),
	}).Info("Đã seed rule mặc định cho trang")
	return nil
}
