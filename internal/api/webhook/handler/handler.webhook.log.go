// Package webhookhdl - handler CRUD cho webhook log.
package webhookhdl

import (
	"fmt"

	basehdl "chat_commerce/internal/api/base/handler"
	webhookdto "chat_commerce/internal/api/webhook/dto"
	webhookmodels "chat_commerce/internal/api/webhook/models"
	webhooksvc "chat_commerce/internal/api/webhook/service"
)

// WebhookLogHandler xử lý các yêu cầu tra cứu webhook log
type WebhookLogHandler struct {
	*basehdl.BaseHandler[webhookmodels.WebhookLog, webhookdto.WebhookLogCreateInput, webhookdto.WebhookLogUpdateInput]
	WebhookLogService *webhooksvc.WebhookLogService
}

// NewWebhookLogHandler khởi tạo WebhookLogHandler mới
func NewWebhookLogHandler() (*WebhookLogHandler, error) {
	service, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	hdl := &WebhookLogHandler{WebhookLogService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[webhookmodels.WebhookLog, webhookdto.WebhookLogCreateInput, webhookdto.WebhookLogUpdateInput](service)
	return hdl, nil
}
