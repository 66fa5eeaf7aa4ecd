package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message là log bất biến của một tin nhắn vào/ra.
// Append-only: pipeline chỉ ghi thêm, không bao giờ sửa hay xóa.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"` // ID của message
	PageId    string             `json:"pageId" bson:"pageId"`    // ID trang Facebook
	SenderId  string             `json:"senderId" bson:"senderId"` // ID khách trên Messenger
	Body      string             `json:"body" bson:"body"`         // Nội dung tin nhắn
	Direction string             `json:"direction" bson:"direction"` // in | out

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
