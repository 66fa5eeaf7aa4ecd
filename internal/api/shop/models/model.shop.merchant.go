package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Merchant đại diện cho một chủ shop sử dụng hệ thống.
// Mỗi merchant gắn với một Facebook Page (pageId duy nhất).
type Merchant struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`        // ID của merchant
	PageId       string             `json:"pageId" bson:"pageId"`           // ID trang Facebook của merchant (unique)
	Name         string             `json:"name" bson:"name"`               // Tên merchant
	BusinessType string             `json:"businessType" bson:"businessType"` // Loại hình kinh doanh: retail | cargo

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
