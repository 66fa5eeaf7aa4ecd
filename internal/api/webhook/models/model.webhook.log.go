package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WebhookLog ghi lại mỗi webhook POST nhận được để chẩn đoán sự cố:
// raw body, headers, và kết quả xử lý của pipeline.
type WebhookLog struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Source         string             `json:"source" bson:"source"` // facebook | facebook_rules
	PageID         string             `json:"pageId" bson:"pageId"`
	RequestHeaders map[string]string  `json:"requestHeaders" bson:"requestHeaders"`
	RawBody        string             `json:"rawBody" bson:"rawBody"`
	IPAddress      string             `json:"ipAddress" bson:"ipAddress"`

	Processed    bool   `json:"processed" bson:"processed"`       // Pipeline đã chạy xong batch chưa
	ProcessError string `json:"processError" bson:"processError"` // Lỗi cuối cùng nếu có
	ProcessedAt  int64  `json:"processedAt" bson:"processedAt"`   // Thời điểm xử lý xong

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
