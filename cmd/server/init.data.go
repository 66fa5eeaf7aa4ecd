package main

import (
	"context"

	shopsvc "chat_commerce/internal/api/shop/service"
	"chat_commerce/internal/global"
	"chat_commerce/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData khởi tạo dữ liệu mặc định cho hệ thống.
// Chỉ chạy khi INITMODE=true: seed bộ rule trả lời mặc định cho các merchant đã có.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data initialization")
		return
	}

	log.Info("Starting InitDefaultData...")

	merchantService, err := shopsvc.NewMerchantService()
	if err != nil {
		log.Fatalf("Failed to initialize merchant service: %v", err)
	}
	replyRuleService, err := shopsvc.NewReplyRuleService()
	if err != nil {
		log.Fatalf("Failed to initialize reply rule service: %v", err)
	}

	// Seed rule mặc định cho từng merchant (idempotent, bỏ qua merchant đã có rule)
	merchants, err := merchantService.Find(context.TODO(), bson.M{}, nil)
	if err != nil {
		log.Fatalf("Failed to list merchants: %v", err)
	}

	for _, merchant := range merchants {
		if err := replyRuleService.SeedDefaultRules(context.TODO(), merchant.PageId, merchant.BusinessType); err != nil {
			log.Warnf("Failed to seed default rules for page %s: %v", merchant.PageId, err)
		}
	}

	log.Infof("InitDefaultData completed (%d merchants checked)", len(merchants))
}
