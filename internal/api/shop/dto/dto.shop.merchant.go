package shopdto

// MerchantCreateInput dữ liệu đầu vào khi tạo merchant
type MerchantCreateInput struct {
	PageId       string `json:"pageId" validate:"required"`
	Name         string `json:"name" validate:"required,no_xss"`
	BusinessType string `json:"businessType" validate:"required,oneof=retail cargo"`
}

// MerchantUpdateInput dữ liệu đầu vào khi cập nhật merchant
type MerchantUpdateInput struct {
	Name         string `json:"name" validate:"omitempty,no_xss"`
	BusinessType string `json:"businessType" validate:"omitempty,oneof=retail cargo"`
}
