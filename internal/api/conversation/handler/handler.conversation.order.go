package convhdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basehdl "chat_commerce/internal/api/base/handler"
	convmodels "chat_commerce/internal/api/conversation/models"
	convsvc "chat_commerce/internal/api/conversation/service"
)

// OrderHandler xử lý các yêu cầu tra cứu đơn hàng (chỉ đọc)
type OrderHandler struct {
	*basehdl.BaseHandler[convmodels.Order, convmodels.Order, convmodels.Order]
	OrderService *convsvc.OrderService
}

// NewOrderHandler khởi tạo OrderHandler mới
func NewOrderHandler() (*OrderHandler, error) {
	service, err := convsvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	hdl := &OrderHandler{OrderService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[convmodels.Order, convmodels.Order, convmodels.Order](service)
	return hdl, nil
}

// HandleFindByPageID tra đơn hàng của một trang, mới nhất trước
func (h *OrderHandler) HandleFindByPageID(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	filter := bson.M{"pageId": id}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	data, err := h.OrderService.Find(context.Background(), filter, opts)
	h.HandleResponse(c, data, err)
	return nil
}
