package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReplyRule là một luật trả lời tự động theo từ khóa của một trang.
// Các rule của một trang được duyệt theo priority tăng dần, rule khớp đầu tiên thắng.
type ReplyRule struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"` // ID của rule
	PageId    string             `json:"pageId" bson:"pageId"`    // ID trang Facebook sở hữu rule
	Keyword   string             `json:"keyword" bson:"keyword"`  // Từ khóa cần so khớp (bỏ qua với matchType=fallback)
	Reply     string             `json:"reply" bson:"reply"`      // Nội dung trả lời
	MatchType string             `json:"matchType" bson:"matchType"` // exact | contains | fallback
	Priority  int                `json:"priority" bson:"priority"`   // Thứ tự ưu tiên, nhỏ hơn được xét trước
	Enabled   bool               `json:"enabled" bson:"enabled"`     // Rule có đang bật không

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
