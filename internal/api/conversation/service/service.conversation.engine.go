package convsvc

import (
	convmodels "chat_commerce/internal/api/conversation/models"
	shopmodels "chat_commerce/internal/api/shop/models"
)

// Câu trả lời cố định cho từng bước của kịch bản đặt hàng.
const (
	replyAskProduct   = "Chào bạn! Bạn muốn đặt sản phẩm nào ạ?"
	replyAskQty       = "Bạn muốn đặt số lượng bao nhiêu ạ?"
	replyAskAddress   = "Bạn cho shop xin địa chỉ nhận hàng nhé!"
	replyAskPayment   = "Bạn muốn thanh toán bằng hình thức nào ạ? (COD / chuyển khoản)"
	replyAskReference = "Bạn cho shop xin mã tham chiếu thanh toán nhé!"
	replyDone         = "Shop đã nhận đủ thông tin. Cảm ơn bạn, đơn hàng sẽ được xử lý ngay ạ!"
)

// Tên trường TempData được lưu sau mỗi bước.
const (
	FieldProduct       = "product"
	FieldQty           = "qty"
	FieldAddress       = "address"
	FieldPaymentMethod = "payment_method"
	FieldReference     = "reference"
)

// TransitionResult là kết quả của một lần chuyển bước.
type TransitionResult struct {
	Reply string            // Câu trả lời gửi cho khách
	Next  convmodels.Step   // Bước kế tiếp
	Save  map[string]string // Trường cần merge vào TempData (tối đa một key)
}

// Transition là hàm thuần của state machine hội thoại:
// (bước hiện tại, loại hình kinh doanh, text đã trim) → (trả lời, bước kế, trường cần lưu).
// Không I/O. Input được nhận nguyên văn, không validate nội dung (số lượng không parse số).
//
// Bảng chuyển:
//
//	ASK_PRODUCT   → lưu product        → ASK_QTY
//	ASK_QTY       → lưu qty            → ASK_ADDRESS
//	ASK_ADDRESS   → lưu address        → ASK_PAYMENT (retail) | DONE (cargo)
//	ASK_PAYMENT   → lưu payment_method → ASK_REFERENCE
//	ASK_REFERENCE → lưu reference      → DONE
//	bước lạ/rỗng  → không lưu gì       → ASK_PRODUCT (bắt đầu lại)
func Transition(step convmodels.Step, businessType string, text string) TransitionResult {
	switch step {
	case convmodels.StepAskProduct:
		return TransitionResult{
			Reply: replyAskQty,
			Next:  convmodels.StepAskQty,
			Save:  map[string]string{FieldProduct: text},
		}
	case convmodels.StepAskQty:
		return TransitionResult{
			Reply: replyAskAddress,
			Next:  convmodels.StepAskAddress,
			Save:  map[string]string{FieldQty: text},
		}
	case convmodels.StepAskAddress:
		// Điểm rẽ nhánh duy nhất: cargo không thu thập thanh toán
		if businessType == shopmodels.BusinessTypeCargo {
			return TransitionResult{
				Reply: replyDone,
				Next:  convmodels.StepDone,
				Save:  map[string]string{FieldAddress: text},
			}
		}
		return TransitionResult{
			Reply: replyAskPayment,
			Next:  convmodels.StepAskPayment,
			Save:  map[string]string{FieldAddress: text},
		}
	case convmodels.StepAskPayment:
		return TransitionResult{
			Reply: replyAskReference,
			Next:  convmodels.StepAskReference,
			Save:  map[string]string{FieldPaymentMethod: text},
		}
	case convmodels.StepAskReference:
		return TransitionResult{
			Reply: replyDone,
			Next:  convmodels.StepDone,
			Save:  map[string]string{FieldReference: text},
		}
	default:
		// Bước lạ (kể cả DONE còn sót): bắt đầu hội thoại mới, không lưu gì
		return TransitionResult{
			Reply: replyAskProduct,
			Next:  convmodels.StepAskProduct,
			Save:  map[string]string{},
		}
	}
}
