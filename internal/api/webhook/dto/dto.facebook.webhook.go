// Package webhookdto chứa DTO cho domain Webhook.
// File: dto.facebook.webhook.go - payload webhook của Facebook Messenger Platform.
package webhookdto

// FacebookWebhookRequest là body POST webhook từ Facebook.
// Object luôn là "page" với webhook Messenger.
type FacebookWebhookRequest struct {
	Object string          `json:"object"` // Luôn "page" với Messenger
	Entry  []FacebookEntry `json:"entry"`  // Mỗi entry là một trang
}

// FacebookEntry là batch event của một trang.
type FacebookEntry struct {
	ID        string              `json:"id"`        // Page ID
	Time      int64               `json:"time"`      // Thời điểm event (Unix milliseconds)
	Messaging []FacebookMessaging `json:"messaging"` // Các messaging event, xử lý theo đúng thứ tự mảng
}

// FacebookMessaging là một messaging event đơn lẻ.
type FacebookMessaging struct {
	Sender    FacebookUser      `json:"sender"`              // Ai gửi
	Recipient FacebookUser      `json:"recipient"`           // Ai nhận (trang)
	Timestamp int64             `json:"timestamp"`           // Thời điểm (Unix milliseconds)
	Message   *FacebookMessage  `json:"message,omitempty"`   // Nội dung tin nhắn
	Postback  *FacebookPostback `json:"postback,omitempty"`  // Postback từ button
	Delivery  *FacebookDelivery `json:"delivery,omitempty"`  // Biên nhận đã giao
	Read      *FacebookRead     `json:"read,omitempty"`      // Biên nhận đã đọc
}

// FacebookUser định danh một bên trong hội thoại (PSID hoặc Page ID).
type FacebookUser struct {
	ID string `json:"id"`
}

// FacebookMessage là nội dung tin nhắn.
type FacebookMessage struct {
	MID         string               `json:"mid"`  // Message ID
	Text        string               `json:"text"` // Nội dung text
	Attachments []FacebookAttachment `json:"attachments,omitempty"`
	IsEcho      bool                 `json:"is_echo,omitempty"` // Tin do chính trang gửi, vọng lại
}

// FacebookAttachment là file đính kèm.
type FacebookAttachment struct {
	Type    string                    `json:"type"` // image, video, audio, file
	Payload FacebookAttachmentPayload `json:"payload"`
}

// FacebookAttachmentPayload chứa URL tải attachment.
type FacebookAttachmentPayload struct {
	URL string `json:"url"`
}

// FacebookPostback là payload khi khách bấm button.
type FacebookPostback struct {
	Title   string `json:"title"`
	Payload string `json:"payload"`
}

// FacebookDelivery là biên nhận đã giao.
type FacebookDelivery struct {
	MIDs      []string `json:"mids"`
	Watermark int64    `json:"watermark"`
}

// FacebookRead là biên nhận đã đọc.
type FacebookRead struct {
	Watermark int64 `json:"watermark"`
}

// IsUserTextMessage kiểm tra event có phải tin text do khách gửi không.
// Echo, postback, delivery/read receipt và tin chỉ có attachment đều bị bỏ qua.
func (m *FacebookMessaging) IsUserTextMessage() bool {
	if m.Message == nil {
		return false
	}
	if m.Message.IsEcho {
		return false
	}
	return m.Message.Text != ""
}
