package models

// Step là bước hiện tại của một hội thoại đặt hàng.
// Kiểu enum riêng để bảng chuyển trạng thái là exhaustive, không dispatch động theo chuỗi tự do.
type Step string

const (
	StepAskProduct   Step = "ASK_PRODUCT"   // Đang hỏi tên sản phẩm (bước vào của hội thoại mới)
	StepAskQty       Step = "ASK_QTY"       // Đang hỏi số lượng
	StepAskAddress   Step = "ASK_ADDRESS"   // Đang hỏi địa chỉ nhận hàng
	StepAskPayment   Step = "ASK_PAYMENT"   // Đang hỏi hình thức thanh toán (bỏ qua với cargo)
	StepAskReference Step = "ASK_REFERENCE" // Đang hỏi mã tham chiếu thanh toán
	StepDone         Step = "DONE"          // Hội thoại hoàn tất, đơn hàng được tạo
)

// Hướng của tin nhắn đã log.
const (
	DirectionIn  = "in"  // Tin nhắn từ khách gửi vào trang
	DirectionOut = "out" // Tin trả lời hệ thống gửi cho khách
)

// Trạng thái mặc định của đơn hàng vừa tạo từ hội thoại hoàn tất.
const (
	OrderStatusNew = "new" // Đơn mới, chờ admin xử lý

	PaymentPending = "pending" // Chờ thanh toán (retail)
	PaymentNone    = "none"    // Không thu hộ qua hệ thống (cargo)
	ShippingNone   = "none"    // Chưa giao
)
