// Package webhookdto chứa DTO cho domain Webhook.
// File: dto.webhook.log.go
package webhookdto

// WebhookLogCreateInput là DTO cho tạo mới webhook log
type WebhookLogCreateInput struct {
	Source         string            `json:"source" validate:"required"` // "facebook" hoặc "facebook_rules"
	PageID         string            `json:"pageId,omitempty"`
	RequestHeaders map[string]string `json:"requestHeaders,omitempty"`
	RawBody        string            `json:"rawBody" validate:"required"`
	IPAddress      string            `json:"ipAddress,omitempty"`
}

// WebhookLogUpdateInput là DTO cho cập nhật webhook log
type WebhookLogUpdateInput struct {
	Processed    *bool   `json:"processed,omitempty"`    // Đã xử lý thành công chưa
	ProcessError *string `json:"processError,omitempty"` // Lỗi nếu có
}
