package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order là sản phẩm cuối của một hội thoại hoàn tất: hợp nhất các trường
// trong TempData cộng với trạng thái mặc định. Core chỉ tạo, không bao giờ sửa;
// cập nhật trạng thái về sau thuộc về lớp admin.
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`          // ID của đơn hàng
	PageId        string             `json:"pageId" bson:"pageId"`             // ID trang Facebook
	SenderId      string             `json:"senderId" bson:"senderId"`         // ID khách đặt đơn
	Product       string             `json:"product" bson:"product"`           // Tên sản phẩm khách nhập
	Qty           string             `json:"qty" bson:"qty"`                   // Số lượng (giữ nguyên chuỗi khách nhập)
	Address       string             `json:"address" bson:"address"`           // Địa chỉ nhận hàng
	PaymentMethod string             `json:"paymentMethod" bson:"paymentMethod"` // Hình thức thanh toán (rỗng với cargo)
	Reference     string             `json:"reference" bson:"reference"`       // Mã tham chiếu thanh toán (rỗng với cargo)

	OrderStatus    string `json:"orderStatus" bson:"orderStatus"`       // new
	PaymentStatus  string `json:"paymentStatus" bson:"paymentStatus"`   // pending (retail) | none (cargo)
	ShippingStatus string `json:"shippingStatus" bson:"shippingStatus"` // none

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
