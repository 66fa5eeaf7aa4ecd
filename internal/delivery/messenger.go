// Package delivery - Gửi tin trả lời cho khách qua Facebook Messenger Send API.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"chat_commerce/internal/logger"
)

// MessengerSender là cổng gửi tin ra ngoài, pipeline chỉ phụ thuộc interface này.
type MessengerSender interface {
	SendText(ctx context.Context, accessToken string, recipientID string, text string) error
}

// MessengerClient gọi Graph API Send API qua HTTP.
type MessengerClient struct {
	baseURL    string // https://graph.facebook.com
	apiVersion string // v19.0
	httpClient *http.Client
}

// NewMessengerClient tạo mới MessengerClient.
// Tham số:
//   - baseURL: gốc Graph API, ví dụ https://graph.facebook.com
//   - apiVersion: phiên bản API, ví dụ v19.0
//   - timeout: giới hạn thời gian cho một lần gửi
func NewMessengerClient(baseURL string, apiVersion string, timeout time.Duration) *MessengerClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MessengerClient{
		baseURL:    baseURL,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// sendTextPayload là body của POST /me/messages
type sendTextPayload struct {
	Recipient struct {
		ID string `json:"id"`
	} `json:"recipient"`
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

// SendText gửi một tin text cho khách bằng page access token của trang.
// Kết quả gửi luôn được kiểm tra: status ngoài 2xx là lỗi, caller phải log và xử lý.
func (c *MessengerClient) SendText(ctx context.Context, accessToken string, recipientID string, text string) error {
	correlationID := uuid.New().String()
	log := logger.GetDeliveryLogger()

	payload := sendTextPayload{}
	payload.Recipient.ID = recipientID
	payload.Message.Text = text

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s/me/messages?access_token=%s", c.baseURL, c.apiVersion, accessToken)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.WithFields(map[string]interface{}{
			"correlationId": correlationID,
			"recipientId":   recipientID,
			"error":         err.Error(),
		}).Error("Gửi tin Messenger thất bại")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Đọc tối đa 2KB body lỗi để chẩn đoán, không nuốt cả response lớn
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		log.WithFields(map[string]interface{}{
			"correlationId": correlationID,
			"recipientId":   recipientID,
			"status":        resp.StatusCode,
			"body":          string(body),
		}).Error("Messenger Send API trả về status lỗi")
		return fmt.Errorf("messenger send returned status %d", resp.StatusCode)
	}

	log.WithFields(map[string]interface{}{
		"correlationId": correlationID,
		"recipientId":   recipientID,
		"durationMs":    time.Since(start).Milliseconds(),
	}).Info("Đã gửi tin Messenger")
	return nil
}
