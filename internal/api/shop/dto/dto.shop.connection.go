package shopdto

// ConnectionCreateInput dữ liệu đầu vào khi tạo connection
type ConnectionCreateInput struct {
	PageId          string `json:"pageId" validate:"required"`
	PageAccessToken string `json:"pageAccessToken" validate:"required"`
	IsActive        bool   `json:"isActive"`
}

// ConnectionUpdateTokenInput dữ liệu đầu vào khi cập nhật token của connection
type ConnectionUpdateTokenInput struct {
	PageId          string `json:"pageId" validate:"required"`
	PageAccessToken string `json:"pageAccessToken" validate:"required"`
}
