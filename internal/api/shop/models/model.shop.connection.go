package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection lưu thông tin kết nối giữa hệ thống và một Facebook Page:
// page access token dùng để gửi tin qua Messenger Send API.
type Connection struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`                    // ID của connection
	PageId          string             `json:"pageId" bson:"pageId"`                       // ID trang Facebook (unique)
	PageAccessToken string             `json:"pageAccessToken" bson:"pageAccessToken"`     // Mã truy cập của trang
	IsActive        bool               `json:"isActive" bson:"isActive"`                   // Trạng thái kích hoạt

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
