package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation là trạng thái một hội thoại đặt hàng đang diễn ra giữa một
// khách (senderId) và một trang (pageId). Duy nhất theo cặp (pageId, senderId).
// Khi hội thoại hoàn tất (DONE) thì đơn hàng được tạo và document này bị xóa.
type Conversation struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"` // ID của hội thoại
	PageId   string             `json:"pageId" bson:"pageId"`    // ID trang Facebook
	SenderId string             `json:"senderId" bson:"senderId"` // ID khách trên Messenger
	Step     string             `json:"step" bson:"step"`         // Bước hiện tại (giá trị của Step)
	TempData map[string]string  `json:"tempData" bson:"tempData"` // Dữ liệu đơn hàng gom dần qua các bước

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
