// Package webhooksvc - Test PipelineService với stub store: kịch bản retail/cargo,
// skip event, cách ly lỗi từng event, retry khi bước bị chen ngang, biến thể rule.
package webhooksvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convmodels "chat_commerce/internal/api/conversation/models"
	convsvc "chat_commerce/internal/api/conversation/service"
	shopmodels "chat_commerce/internal/api/shop/models"
	shopsvc "chat_commerce/internal/api/shop/service"
	webhookdto "chat_commerce/internal/api/webhook/dto"
	"chat_commerce/internal/common"
	"chat_commerce/internal/worker"
)

// ===== Stub stores =====

type stubConversationStore struct {
	conversations map[string]*convmodels.Conversation
	conflictsLeft int // Số lần AdvanceStep giả vờ bị chen ngang trước khi chạy thật
	getOrCreates  int
}

func newStubConversationStore() *stubConversationStore {
	return &stubConversationStore{conversations: map[string]*convmodels.Conversation{}}
}

func (s *stubConversationStore) key(pageID, senderID string) string { return pageID + ":" + senderID }

func (s *stubConversationStore) GetOrCreate(ctx context.Context, pageID string, senderID string) (convmodels.Conversation, error) {
	s.getOrCreates++
	if conv, ok := s.conversations[s.key(pageID, senderID)]; ok {
		return *conv, nil
	}
	conv := &convmodels.Conversation{
		PageId:   pageID,
		SenderId: senderID,
		Step:     string(convmodels.StepAskProduct),
		TempData: map[string]string{},
	}
	s.conversations[s.key(pageID, senderID)] = conv
	return *conv, nil
}

func (s *stubConversationStore) AdvanceStep(ctx context.Context, conv convmodels.Conversation, next convmodels.Step, save map[string]string) (convmodels.Conversation, error) {
	if s.conflictsLeft > 0 {
		s.conflictsLeft--
		return convmodels.Conversation{}, common.ErrStepConflict
	}
	stored, ok := s.conversations[s.key(conv.PageId, conv.SenderId)]
	if !ok || stored.Step != conv.Step {
		return convmodels.Conversation{}, common.ErrStepConflict
	}
	stored.Step = string(next)
	if stored.TempData == nil {
		stored.TempData = map[string]string{}
	}
	for k, v := range save {
		stored.TempData[k] = v
	}
	return *stored, nil
}

func (s *stubConversationStore) DeleteByKey(ctx context.Context, pageID string, senderID string) error {
	delete(s.conversations, s.key(pageID, senderID))
	return nil
}

type stubMessageStore struct {
	inbound  []convmodels.Message
	outbound []convmodels.Message
}

func (s *stubMessageStore) LogInbound(ctx context.Context, pageID, senderID, body string) (convmodels.Message, error) {
	m := convmodels.Message{PageId: pageID, SenderId: senderID, Body: body, Direction: convmodels.DirectionIn}
	s.inbound = append(s.inbound, m)
	return m, nil
}

func (s *stubMessageStore) LogOutbound(ctx context.Context, pageID, senderID, body string) (convmodels.Message, error) {
	m := convmodels.Message{PageId: pageID, SenderId: senderID, Body: body, Direction: convmodels.DirectionOut}
	s.outbound = append(s.outbound, m)
	return m, nil
}

type stubOrderStore struct {
	orders []convmodels.Order
}

func (s *stubOrderStore) CreateFromConversation(ctx context.Context, conv convmodels.Conversation, businessType string) (convmodels.Order, error) {
	order := convsvc.BuildOrderFromConversation(conv, businessType)
	s.orders = append(s.orders, order)
	return order, nil
}

type stubMerchantStore struct {
	merchants map[string]shopmodels.Merchant
}

func (s *stubMerchantStore) FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Merchant, error) {
	if m, ok := s.merchants[pageID]; ok {
		return m, nil
	}
	return shopmodels.Merchant{}, common.ErrNotFound
}

type stubConnectionStore struct {
	connections map[string]shopmodels.Connection
}

func (s *stubConnectionStore) FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Connection, error) {
	if c, ok := s.connections[pageID]; ok {
		return c, nil
	}
	return shopmodels.Connection{}, common.ErrNotFound
}

type stubRuleStore struct {
	rules []shopmodels.ReplyRule
}

func (s *stubRuleStore) ChooseReply(ctx context.Context, pageID string, text string) (string, error) {
	return shopsvc.MatchReply(s.rules, text), nil
}

type stubSender struct {
	sent     []string
	failNext int // Số lần gửi tiếp theo sẽ lỗi
}

func (s *stubSender) SendText(ctx context.Context, accessToken, recipientID, text string) error {
	if s.failNext > 0 {
		s.failNext--
		return errors.New("send failed")
	}
	s.sent = append(s.sent, text)
	return nil
}

// ===== Helpers =====

type pipelineFixture struct {
	pipeline      *PipelineService
	conversations *stubConversationStore
	messages      *stubMessageStore
	orders        *stubOrderStore
	sender        *stubSender
}

func newPipelineFixture(businessType string) *pipelineFixture {
	conversations := newStubConversationStore()
	messages := &stubMessageStore{}
	orders := &stubOrderStore{}
	sender := &stubSender{}
	p := &PipelineService{
		Conversations: conversations,
		Messages:      messages,
		Orders:        orders,
		Merchants: &stubMerchantStore{merchants: map[string]shopmodels.Merchant{
			"page-1": {PageId: "page-1", Name: "Shop Test", BusinessType: businessType},
		}},
		Connections: &stubConnectionStore{connections: map[string]shopmodels.Connection{
			"page-1": {PageId: "page-1", PageAccessToken: "token-1", IsActive: true},
		}},
		Rules:  &stubRuleStore{},
		Sender: sender,
		Locks:  worker.NewKeyedLock(),
	}
	return &pipelineFixture{pipeline: p, conversations: conversations, messages: messages, orders: orders, sender: sender}
}

func textEvent(senderID, text string) webhookdto.FacebookMessaging {
	return webhookdto.FacebookMessaging{
		Sender:  webhookdto.FacebookUser{ID: senderID},
		Message: &webhookdto.FacebookMessage{MID: "mid." + senderID, Text: text},
	}
}

func batchOf(pageID string, events ...webhookdto.FacebookMessaging) *webhookdto.FacebookWebhookRequest {
	return &webhookdto.FacebookWebhookRequest{
		Object: "page",
		Entry:  []webhookdto.FacebookEntry{{ID: pageID, Messaging: events}},
	}
}

// ===== Tests =====

func TestPipeline_RetailFullFlow(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	ctx := context.Background()

	inputs := []string{"Blue Shirt", "2", "123 Main St", "COD", "REF123"}
	for _, input := range inputs {
		ev := textEvent("user-1", input)
		require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))
	}

	// Đúng một đơn hàng, hội thoại đã bị xóa
	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.Equal(t, "Blue Shirt", order.Product)
	assert.Equal(t, "2", order.Qty)
	assert.Equal(t, "123 Main St", order.Address)
	assert.Equal(t, "COD", order.PaymentMethod)
	assert.Equal(t, "REF123", order.Reference)
	assert.Equal(t, convmodels.OrderStatusNew, order.OrderStatus)
	assert.Equal(t, convmodels.PaymentPending, order.PaymentStatus)
	assert.Equal(t, convmodels.ShippingNone, order.ShippingStatus)
	assert.Empty(t, f.conversations.conversations)

	// Mỗi event: một tin vào, một tin ra
	assert.Len(t, f.messages.inbound, 5)
	assert.Len(t, f.messages.outbound, 5)
	assert.Len(t, f.sender.sent, 5)
}

func TestPipeline_CargoSkipsPayment(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeCargo)
	ctx := context.Background()

	for _, input := range []string{"Thùng 20kg", "1", "456 Trần Phú"} {
		ev := textEvent("user-1", input)
		require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))
	}

	require.Len(t, f.orders.orders, 1)
	order := f.orders.orders[0]
	assert.Equal(t, convmodels.PaymentNone, order.PaymentStatus)
	assert.Equal(t, convmodels.ShippingNone, order.ShippingStatus)
	assert.Empty(t, order.PaymentMethod)
	assert.Empty(t, f.conversations.conversations)
	assert.Len(t, f.sender.sent, 3)
}

func TestPipeline_SkipsNonTextEvents(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	ctx := context.Background()

	echo := textEvent("user-1", "echo text")
	echo.Message.IsEcho = true
	events := []webhookdto.FacebookMessaging{
		echo,
		{Sender: webhookdto.FacebookUser{ID: "user-1"}, Delivery: &webhookdto.FacebookDelivery{Watermark: 1}},
		{Sender: webhookdto.FacebookUser{ID: "user-1"}, Read: &webhookdto.FacebookRead{Watermark: 1}},
		{Sender: webhookdto.FacebookUser{ID: "user-1"}, Message: &webhookdto.FacebookMessage{Attachments: []webhookdto.FacebookAttachment{{Type: "image"}}}},
	}

	require.NoError(t, f.pipeline.ProcessBatch(ctx, batchOf("page-1", events...)))

	assert.Empty(t, f.messages.inbound, "event không phải text của khách không được log")
	assert.Empty(t, f.sender.sent)
	assert.Empty(t, f.conversations.conversations)
}

func TestPipeline_SkipsWhenConnectionMissing(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.pipeline.Connections = &stubConnectionStore{connections: map[string]shopmodels.Connection{}}
	ctx := context.Background()

	ev := textEvent("user-1", "Blue Shirt")
	require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))

	// Tin vào vẫn được log, nhưng không trả lời và không tạo hội thoại
	assert.Len(t, f.messages.inbound, 1)
	assert.Empty(t, f.sender.sent)
	assert.Empty(t, f.conversations.conversations)
}

func TestPipeline_SkipsWhenMerchantMissing(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.pipeline.Merchants = &stubMerchantStore{merchants: map[string]shopmodels.Merchant{}}
	ctx := context.Background()

	ev := textEvent("user-1", "Blue Shirt")
	require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))

	assert.Len(t, f.messages.inbound, 1)
	assert.Empty(t, f.sender.sent)
	assert.Empty(t, f.conversations.conversations)
}

func TestPipeline_BatchIsolatesEventFailures(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.sender.failNext = 1 // Event đầu lỗi khi gửi trả lời
	ctx := context.Background()

	batch := batchOf("page-1",
		textEvent("user-1", "Blue Shirt"),
		textEvent("user-2", "Red Hat"),
	)
	err := f.pipeline.ProcessBatch(ctx, batch)

	// Batch trả lỗi cuối cùng nhưng event thứ hai vẫn được xử lý trọn vẹn
	require.Error(t, err)
	assert.Len(t, f.messages.inbound, 2)
	assert.Len(t, f.sender.sent, 1)
	assert.Len(t, f.messages.outbound, 1)
	assert.Equal(t, "user-2", f.messages.outbound[0].SenderId)
}

func TestPipeline_RetriesOnStepConflict(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.conversations.conflictsLeft = 2 // Hai lần đầu bị chen ngang, lần ba chạy thật
	ctx := context.Background()

	ev := textEvent("user-1", "Blue Shirt")
	require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))

	assert.Equal(t, 3, f.conversations.getOrCreates, "mỗi lần retry phải đọc lại trạng thái")
	conv := f.conversations.conversations["page-1:user-1"]
	require.NotNil(t, conv)
	assert.Equal(t, string(convmodels.StepAskQty), conv.Step)
}

func TestPipeline_GivesUpAfterMaxRetries(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.conversations.conflictsLeft = 10 // Nhiều hơn số retry cho phép
	ctx := context.Background()

	ev := textEvent("user-1", "Blue Shirt")
	err := f.pipeline.ProcessEvent(ctx, "page-1", &ev)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrStepConflict)
	assert.Empty(t, f.sender.sent)
}

func TestPipeline_RuleVariantMatches(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.pipeline.Rules = &stubRuleStore{rules: []shopmodels.ReplyRule{
		{PageId: "page-1", Keyword: "giá", Reply: "Bảng giá đây ạ", MatchType: shopmodels.MatchTypeContains, Priority: 1, Enabled: true},
		{PageId: "page-1", Reply: "Shop chào bạn!", MatchType: shopmodels.MatchTypeFallback, Priority: 100, Enabled: true},
	}}
	ctx := context.Background()

	ev := textEvent("user-1", "cho hỏi giá")
	require.NoError(t, f.pipeline.ProcessRuleEvent(ctx, "page-1", &ev))
	require.Len(t, f.sender.sent, 1)
	assert.Equal(t, "Bảng giá đây ạ", f.sender.sent[0])

	ev2 := textEvent("user-1", "alo")
	require.NoError(t, f.pipeline.ProcessRuleEvent(ctx, "page-1", &ev2))
	require.Len(t, f.sender.sent, 2)
	assert.Equal(t, "Shop chào bạn!", f.sender.sent[1])

	// Biến thể rule không tạo trạng thái hội thoại
	assert.Empty(t, f.conversations.conversations)
	assert.Len(t, f.messages.inbound, 2)
	assert.Len(t, f.messages.outbound, 2)
}

func TestPipeline_RuleVariantNoMatchNoReply(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	f.pipeline.Rules = &stubRuleStore{rules: []shopmodels.ReplyRule{
		{PageId: "page-1", Keyword: "giá", Reply: "Bảng giá", MatchType: shopmodels.MatchTypeExact, Priority: 1, Enabled: true},
	}}
	ctx := context.Background()

	ev := textEvent("user-1", "xin chào")
	require.NoError(t, f.pipeline.ProcessRuleEvent(ctx, "page-1", &ev))

	// Không rule nào khớp và không có fallback: log tin vào, không gửi gì
	assert.Len(t, f.messages.inbound, 1)
	assert.Empty(t, f.sender.sent)
	assert.Empty(t, f.messages.outbound)
}

func TestPipeline_UnknownStoredStepRestarts(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	// Hội thoại mang bước lạ (dữ liệu cũ từ phiên bản trước)
	f.conversations.conversations["page-1:user-1"] = &convmodels.Conversation{
		PageId:   "page-1",
		SenderId: "user-1",
		Step:     "LEGACY_STATE",
		TempData: map[string]string{},
	}
	ctx := context.Background()

	ev := textEvent("user-1", "hello")
	require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))

	// Restart về đầu kịch bản: không lưu trường nào, không coi text là sản phẩm
	conv := f.conversations.conversations["page-1:user-1"]
	require.NotNil(t, conv)
	assert.Equal(t, string(convmodels.StepAskProduct), conv.Step)
	assert.Empty(t, conv.TempData)
	assert.Empty(t, f.orders.orders)
	assert.Len(t, f.sender.sent, 1, "vẫn trả lời để hỏi lại sản phẩm")
}

func TestPipeline_ReprocessCompletedConversationStartsFresh(t *testing.T) {
	f := newPipelineFixture(shopmodels.BusinessTypeRetail)
	ctx := context.Background()

	for _, input := range []string{"Blue Shirt", "2", "123 Main St", "COD", "REF123"} {
		ev := textEvent("user-1", input)
		require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))
	}
	require.Len(t, f.orders.orders, 1)

	// Tin tiếp theo sau DONE mở hội thoại mới, không tạo thêm đơn từ dữ liệu cũ
	ev := textEvent("user-1", "Green Pants")
	require.NoError(t, f.pipeline.ProcessEvent(ctx, "page-1", &ev))

	assert.Len(t, f.orders.orders, 1)
	conv := f.conversations.conversations["page-1:user-1"]
	require.NotNil(t, conv)
	assert.Equal(t, string(convmodels.StepAskQty), conv.Step)
	assert.Equal(t, "Green Pants", conv.TempData[convsvc.FieldProduct])
}
