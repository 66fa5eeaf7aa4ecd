// Package database - Index cho các collection của hệ thống (unique keys, compound).
package database

import (
	"context"
	"strings"

	"chat_commerce/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes tạo các index cần thiết cho toàn bộ collection.
// Gọi một lần lúc khởi động, sau khi đã kết nối MongoDB.
func CreateIndexes(ctx context.Context, db *mongo.Database) error {
	// merchants: pageId unique — mỗi trang chỉ có một người bán
	merchants := db.Collection(global.MongoDB_ColNames.Merchants)
	if _, err := merchants.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
		},
		Options: options.Index().SetName("merchant_page").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// connections: pageId unique — mỗi trang chỉ có một kết nối
	connections := db.Collection(global.MongoDB_ColNames.Connections)
	if _, err := connections.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
		},
		Options: options.Index().SetName("connection_page").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// reply_rules: (pageId, priority) — FindEnabledByPageID sort theo priority
	replyRules := db.Collection(global.MongoDB_ColNames.ReplyRules)
	if _, err := replyRules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "priority", Value: 1},
		},
		Options: options.Index().SetName("reply_rule_page_priority"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// conversations: (pageId, senderId) unique — mỗi khách một hội thoại đang mở,
	// upsert GetOrCreate dựa vào index này để tránh tạo trùng
	conversations := db.Collection(global.MongoDB_ColNames.Conversations)
	if _, err := conversations.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "senderId", Value: 1},
		},
		Options: options.Index().SetName("conversation_page_sender").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// messages: (pageId, senderId, createdAt) — lịch sử tin nhắn theo khách
	messages := db.Collection(global.MongoDB_ColNames.Messages)
	if _, err := messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "senderId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("message_page_sender_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: (pageId, createdAt) — danh sách đơn hàng theo trang
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "pageId", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("order_page_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// webhook_logs: createdAt — tra cứu log theo thời gian
	webhookLogs := db.Collection(global.MongoDB_ColNames.WebhookLogs)
	if _, err := webhookLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("webhook_log_time"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// webhook_logs: processed — quét lại các log chưa xử lý
	if _, err := webhookLogs.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "processed", Value: 1},
		},
		Options: options.Index().SetName("webhook_log_processed"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
