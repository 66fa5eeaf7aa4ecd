package models

// Loại hình kinh doanh của merchant.
// Luồng hội thoại phụ thuộc vào loại hình: cargo bỏ qua bước thanh toán.
const (
	BusinessTypeRetail = "retail" // Bán lẻ: đủ các bước product → qty → address → payment → reference
	BusinessTypeCargo  = "cargo"  // Vận chuyển: kết thúc ngay sau bước address
)

// Loại so khớp của reply rule.
const (
	MatchTypeExact    = "exact"    // So khớp chính xác (không phân biệt hoa thường)
	MatchTypeContains = "contains" // So khớp chuỗi con (không phân biệt hoa thường)
	MatchTypeFallback = "fallback" // Trả lời mặc định khi không rule nào khớp
)
