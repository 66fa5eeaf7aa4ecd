// Package webhookhdl - handler webhook Facebook Messenger (verify + pipeline hội thoại + biến thể rule).
package webhookhdl

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "chat_commerce/internal/api/base/handler"
	webhookdto "chat_commerce/internal/api/webhook/dto"
	webhookmodels "chat_commerce/internal/api/webhook/models"
	webhooksvc "chat_commerce/internal/api/webhook/service"
	"chat_commerce/internal/common"
	"chat_commerce/internal/delivery"
	"chat_commerce/internal/global"
	"chat_commerce/internal/logger"
)

// FacebookWebhookHandler xử lý webhook từ Facebook Messenger Platform
type FacebookWebhookHandler struct {
	pipeline          *webhooksvc.PipelineService
	webhookLogService *webhooksvc.WebhookLogService
	verifyToken       string
}

// NewFacebookWebhookHandler tạo mới FacebookWebhookHandler.
// Messenger client được dựng từ cấu hình Graph API trong global config.
func NewFacebookWebhookHandler() (*FacebookWebhookHandler, error) {
	cfg := global.MongoDB_ServerConfig
	sender := delivery.NewMessengerClient(
		cfg.FbGraphAPIBase,
		cfg.FbGraphAPIVer,
		time.Duration(cfg.FbSendTimeoutSec)*time.Second,
	)
	pipeline, err := webhooksvc.NewPipelineService(sender)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline service: %v", err)
	}
	webhookLogService, err := webhooksvc.NewWebhookLogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create webhook log service: %v", err)
	}
	return &FacebookWebhookHandler{
		pipeline:          pipeline,
		webhookLogService: webhookLogService,
		verifyToken:       cfg.FbVerifyToken,
	}, nil
}

// HandleVerify xử lý GET verify của Facebook khi đăng ký webhook:
// hub.mode=subscribe và hub.verify_token khớp thì echo hub.challenge với 200, sai thì 403.
func (h *FacebookWebhookHandler) HandleVerify(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == h.verifyToken {
		return c.Status(common.StatusOK).SendString(challenge)
	}

	logger.GetWebhookLogger().WithFields(map[string]interface{}{
		"mode": mode,
		"ip":   c.IP(),
	}).Warn("Verify webhook thất bại: token không khớp")
	return c.Status(common.StatusForbidden).SendString("Forbidden")
}

// HandleWebhook xử lý POST webhook của luồng hội thoại đặt hàng.
// Luôn trả 200 khi batch đã được nhận (kể cả có event lỗi bị bỏ qua);
// object != "page" trả 404 và không đụng tới store nào.
func (h *FacebookWebhookHandler) HandleWebhook(c fiber.Ctx) error {
	return h.handleWebhook(c, "facebook", h.pipeline.ProcessBatch)
}

// HandleRuleWebhook xử lý POST webhook của biến thể keyword-reply:
// cùng các bước kiểm tra, nhưng trả lời bằng Rule Engine, không có trạng thái hội thoại.
func (h *FacebookWebhookHandler) HandleRuleWebhook(c fiber.Ctx) error {
	return h.handleWebhook(c, "facebook_rules", h.pipeline.ProcessRuleBatch)
}

// handleWebhook là khung chung của hai biến thể POST: parse → 404 nếu không phải
// "page" → lưu webhook log → chạy batch → cập nhật trạng thái xử lý → 200.
func (h *FacebookWebhookHandler) handleWebhook(c fiber.Ctx, source string, process func(ctx context.Context, req *webhookdto.FacebookWebhookRequest) error) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		log := logger.GetWebhookLogger()
		rawBody := string(c.Body())

		var req webhookdto.FacebookWebhookRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			// Body không parse được vẫn đáng lưu lại để chẩn đoán
			h.saveWebhookLog(c, source, "", rawBody)
			return c.Status(common.StatusOK).JSON(fiber.Map{
				"code": common.StatusOK, "message": "Webhook đã được nhận và lưu log", "status": "success",
			})
		}

		// Không phải webhook của page: 404, không gọi store nào
		if req.Object != "page" {
			return c.Status(common.StatusNotFound).SendString("Not Found")
		}

		pageID := ""
		if len(req.Entry) > 0 {
			pageID = req.Entry[0].ID
		}
		webhookLog := h.saveWebhookLog(c, source, pageID, rawBody)

		processErr := process(c.Context(), &req)
		if webhookLog != nil {
			errorMsg := ""
			if processErr != nil {
				errorMsg = processErr.Error()
			}
			if err := h.webhookLogService.UpdateProcessedStatus(c.Context(), webhookLog.ID, processErr == nil, errorMsg); err != nil {
				log.WithError(err).Warn("Không thể cập nhật trạng thái webhook log")
			}
		}

		return c.Status(common.StatusOK).JSON(fiber.Map{
			"code": common.StatusOK, "message": "Webhook đã được xử lý", "status": "success",
		})
	})
}

// saveWebhookLog lưu raw webhook vào webhook_logs. Lỗi lưu log không chặn pipeline.
func (h *FacebookWebhookHandler) saveWebhookLog(c fiber.Ctx, source string, pageID string, rawBody string) *webhookmodels.WebhookLog {
	headers := map[string]string{}
	for key, values := range c.GetReqHeaders() {
		if len(values) > 0 {
			headers[key] = values[0]
		}
	}

	webhookLog, err := h.webhookLogService.CreateWebhookLog(c.Context(), webhookmodels.WebhookLog{
		Source:         source,
		PageID:         pageID,
		RequestHeaders: headers,
		RawBody:        rawBody,
		IPAddress:      c.IP(),
	})
	if err != nil {
		logger.GetWebhookLogger().WithError(err).Warn("Không thể lưu webhook log")
		return nil
	}
	return webhookLog
}
