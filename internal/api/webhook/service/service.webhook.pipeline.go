// Package webhooksvc chứa service cho domain Webhook.
// File: service.webhook.pipeline.go - pipeline xử lý messaging event của Facebook.
package webhooksvc

import (
	"context"
	"fmt"
	"strings"

	convmodels "chat_commerce/internal/api/conversation/models"
	convsvc "chat_commerce/internal/api/conversation/service"
	shopmodels "chat_commerce/internal/api/shop/models"
	shopsvc "chat_commerce/internal/api/shop/service"
	webhookdto "chat_commerce/internal/api/webhook/dto"
	"chat_commerce/internal/common"
	"chat_commerce/internal/delivery"
	"chat_commerce/internal/logger"
	"chat_commerce/internal/worker"
)

// Số lần đọc lại và chạy lại engine khi update bước bị webhook song song chen ngang.
const maxStepRetries = 3

// Các store hẹp mà pipeline phụ thuộc. Service thật implement sẵn,
// test thay bằng stub.
type (
	// ConversationStore là cổng trạng thái hội thoại
	ConversationStore interface {
		GetOrCreate(ctx context.Context, pageID string, senderID string) (convmodels.Conversation, error)
		AdvanceStep(ctx context.Context, conv convmodels.Conversation, next convmodels.Step, save map[string]string) (convmodels.Conversation, error)
		DeleteByKey(ctx context.Context, pageID string, senderID string) error
	}

	// MessageStore là cổng log tin nhắn
	MessageStore interface {
		LogInbound(ctx context.Context, pageID string, senderID string, body string) (convmodels.Message, error)
		LogOutbound(ctx context.Context, pageID string, senderID string, body string) (convmodels.Message, error)
	}

	// OrderStore là cổng tạo đơn hàng
	OrderStore interface {
		CreateFromConversation(ctx context.Context, conv convmodels.Conversation, businessType string) (convmodels.Order, error)
	}

	// MerchantStore là cổng tra cứu merchant theo trang
	MerchantStore interface {
		FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Merchant, error)
	}

	// ConnectionStore là cổng tra cứu connection theo trang
	ConnectionStore interface {
		FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Connection, error)
	}

	// RuleStore là cổng chọn câu trả lời theo luật của trang
	RuleStore interface {
		ChooseReply(ctx context.Context, pageID string, text string) (string, error)
	}
)

// PipelineService điều phối xử lý một webhook POST:
// validate event → log tin nhắn → tra connection/merchant → chạy step engine →
// lưu trạng thái → tạo đơn khi DONE → gửi trả lời → log tin ra.
type PipelineService struct {
	Conversations ConversationStore
	Messages      MessageStore
	Orders        OrderStore
	Merchants     MerchantStore
	Connections   ConnectionStore
	Rules         RuleStore
	Sender        delivery.MessengerSender

	// Khóa theo (pageId, senderId): hai webhook chồng lấn của cùng một khách
	// được xử lý tuần tự trong process này
	Locks *worker.KeyedLock
}

// NewPipelineService tạo PipelineService nối với các service thật.
func NewPipelineService(sender delivery.MessengerSender) (*PipelineService, error) {
	conversationService, err := convsvc.NewConversationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation service: %v", err)
	}
	messageService, err := convsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	orderService, err := convsvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	merchantService, err := shopsvc.NewMerchantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create merchant service: %v", err)
	}
	connectionService, err := shopsvc.NewConnectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create connection service: %v", err)
	}
	replyRuleService, err := shopsvc.NewReplyRuleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create reply rule service: %v", err)
	}
	return &PipelineService{
		Conversations: conversationService,
		Messages:      messageService,
		Orders:        orderService,
		Merchants:     merchantService,
		Connections:   connectionService,
		Rules:         replyRuleService,
		Sender:        sender,
		Locks:         worker.NewKeyedLock(),
	}, nil
}

// ProcessBatch chạy pipeline cho toàn bộ entry/event của một webhook POST,
// theo đúng thứ tự mảng. Lỗi của một event được log kèm ngữ cảnh rồi bỏ qua,
// batch chạy tiếp; lỗi cuối cùng được trả về để ghi vào webhook log.
func (s *PipelineService) ProcessBatch(ctx context.Context, req *webhookdto.FacebookWebhookRequest) error {
	var lastErr error

	for _, entry := range req.Entry {
		for i := range entry.Messaging {
			event := &entry.Messaging[i]
			// ProcessEvent tự log lỗi kèm ngữ cảnh (pageId/senderId/step),
			// batch chỉ giữ lại lỗi cuối để ghi vào webhook log
			if err := s.ProcessEvent(ctx, entry.ID, event); err != nil {
				lastErr = err
			}
		}
	}
	return lastErr
}

// ProcessEvent xử lý một messaging event của luồng hội thoại đặt hàng.
// Event không phải tin text của khách, hoặc trang chưa cấu hình đủ
// (thiếu connection/merchant) thì bỏ qua, không coi là lỗi.
func (s *PipelineService) ProcessEvent(ctx context.Context, pageID string, event *webhookdto.FacebookMessaging) (retErr error) {
	log := logger.GetWebhookLogger()

	if !event.IsUserTextMessage() {
		return nil
	}
	senderID := event.Sender.ID
	text := strings.TrimSpace(event.Message.Text)
	if senderID == "" || text == "" {
		return nil
	}

	// Lỗi của event được log tại đây để có đủ ngữ cảnh, kể cả bước hội thoại
	// đang xử lý khi lỗi xảy ra (rỗng nếu chưa đọc được conversation)
	currentStep := ""
	defer func() {
		if retErr != nil {
			log.WithFields(map[string]interface{}{
				"pageId":   pageID,
				"senderId": senderID,
				"step":     currentStep,
				"error":    retErr.Error(),
			}).Error("Lỗi xử lý messaging event, bỏ qua và chạy tiếp batch")
		}
	}()

	// Tuần tự hóa theo khách: webhook chồng lấn của cùng một khách chờ nhau
	unlock := s.Locks.Lock(pageID + ":" + senderID)
	defer unlock()

	if _, err := s.Messages.LogInbound(ctx, pageID, senderID, text); err != nil {
		return fmt.Errorf("log inbound message: %w", err)
	}

	conn, err := s.Connections.FindOneByPageID(ctx, pageID)
	if err != nil {
		if err == common.ErrNotFound {
			log.WithField("pageId", pageID).Warn("Trang chưa có connection, bỏ qua event")
			return nil
		}
		return fmt.Errorf("find connection: %w", err)
	}

	merchant, err := s.Merchants.FindOneByPageID(ctx, pageID)
	if err != nil {
		if err == common.ErrNotFound {
			log.WithField("pageId", pageID).Warn("Trang chưa có merchant, bỏ qua event")
			return nil
		}
		return fmt.Errorf("find merchant: %w", err)
	}

	// Chuyển bước với retry: webhook song song thắng trước làm update trượt
	// (ErrStepConflict) thì đọc lại trạng thái mới và chạy lại engine
	var conv convmodels.Conversation
	var res convsvc.TransitionResult
	advanced := false
	for attempt := 0; attempt < maxStepRetries; attempt++ {
		conv, err = s.Conversations.GetOrCreate(ctx, pageID, senderID)
		if err != nil {
			return fmt.Errorf("get or create conversation: %w", err)
		}

		// Bước lạ (dữ liệu cũ, migration dở) đi thẳng vào nhánh default của
		// engine: restart về ASK_PRODUCT, không lưu gì
		currentStep = conv.Step
		res = convsvc.Transition(convmodels.Step(currentStep), merchant.BusinessType, text)

		conv, err = s.Conversations.AdvanceStep(ctx, conv, res.Next, res.Save)
		if err == common.ErrStepConflict {
			log.WithFields(map[string]interface{}{
				"pageId":   pageID,
				"senderId": senderID,
				"step":     currentStep,
				"attempt":  attempt + 1,
			}).Warn("Bước hội thoại bị webhook song song chen ngang, đọc lại và thử lại")
			continue
		}
		if err != nil {
			return fmt.Errorf("advance conversation step: %w", err)
		}
		advanced = true
		break
	}
	if !advanced {
		return fmt.Errorf("advance conversation step for %s:%s: %w", pageID, senderID, common.ErrStepConflict)
	}

	if res.Next == convmodels.StepDone {
		if _, err := s.Orders.CreateFromConversation(ctx, conv, merchant.BusinessType); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.Conversations.DeleteByKey(ctx, pageID, senderID); err != nil {
			return fmt.Errorf("delete completed conversation: %w", err)
		}
		log.WithFields(map[string]interface{}{
			"pageId":   pageID,
			"senderId": senderID,
		}).Info("Hội thoại hoàn tất, đã tạo đơn hàng")
	}

	// Kết quả gửi luôn được kiểm tra, không fire-and-forget
	if err := s.Sender.SendText(ctx, conn.PageAccessToken, senderID, res.Reply); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}

	if _, err := s.Messages.LogOutbound(ctx, pageID, senderID, res.Reply); err != nil {
		return fmt.Errorf("log outbound message: %w", err)
	}
	return nil
}

// ProcessRuleBatch chạy biến thể keyword-reply cho toàn bộ batch:
// trả lời bằng Rule Engine, không đụng tới trạng thái hội thoại.
func (s *PipelineService) ProcessRuleBatch(ctx context.Context, req *webhookdto.FacebookWebhookRequest) error {
	log := logger.GetWebhookLogger()
	var lastErr error

	for _, entry := range req.Entry {
		for i := range entry.Messaging {
			event := &entry.Messaging[i]
			if err := s.ProcessRuleEvent(ctx, entry.ID, event); err != nil {
				lastErr = err
				log.WithFields(map[string]interface{}{
					"pageId":   entry.ID,
					"senderId": event.Sender.ID,
					"error":    err.Error(),
				}).Error("Lỗi xử lý rule event, bỏ qua và chạy tiếp batch")
			}
		}
	}
	return lastErr
}

// ProcessRuleEvent xử lý một event theo luật keyword→reply của trang.
// Không rule nào khớp và không có fallback thì không trả lời gì.
func (s *PipelineService) ProcessRuleEvent(ctx context.Context, pageID string, event *webhookdto.FacebookMessaging) error {
	log := logger.GetWebhookLogger()

	if !event.IsUserTextMessage() {
		return nil
	}
	senderID := event.Sender.ID
	text := strings.TrimSpace(event.Message.Text)
	if senderID == "" || text == "" {
		return nil
	}

	if _, err := s.Messages.LogInbound(ctx, pageID, senderID, text); err != nil {
		return fmt.Errorf("log inbound message: %w", err)
	}

	conn, err := s.Connections.FindOneByPageID(ctx, pageID)
	if err != nil {
		if err == common.ErrNotFound {
			log.WithField("pageId", pageID).Warn("Trang chưa có connection, bỏ qua event")
			return nil
		}
		return fmt.Errorf("find connection: %w", err)
	}

	reply, err := s.Rules.ChooseReply(ctx, pageID, text)
	if err != nil {
		return fmt.Errorf("choose rule reply: %w", err)
	}
	if reply == "" {
		return nil
	}

	if err := s.Sender.SendText(ctx, conn.PageAccessToken, senderID, reply); err != nil {
		return fmt.Errorf("send rule reply: %w", err)
	}

	if _, err := s.Messages.LogOutbound(ctx, pageID, senderID, reply); err != nil {
		return fmt.Errorf("log outbound message: %w", err)
	}
	return nil
}
