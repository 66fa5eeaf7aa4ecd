package shophdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "chat_commerce/internal/api/base/handler"
	shopdto "chat_commerce/internal/api/shop/dto"
	shopmodels "chat_commerce/internal/api/shop/models"
	shopsvc "chat_commerce/internal/api/shop/service"
)

// ConnectionHandler xử lý các yêu cầu liên quan đến kết nối trang Facebook
type ConnectionHandler struct {
	*basehdl.BaseHandler[shopmodels.Connection, shopdto.ConnectionCreateInput, shopdto.ConnectionCreateInput]
	ConnectionService *shopsvc.ConnectionService
}

// NewConnectionHandler khởi tạo ConnectionHandler mới
func NewConnectionHandler() (*ConnectionHandler, error) {
	service, err := shopsvc.NewConnectionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create connection service: %v", err)
	}
	hdl := &ConnectionHandler{ConnectionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[shopmodels.Connection, shopdto.ConnectionCreateInput, shopdto.ConnectionCreateInput](service)
	return hdl, nil
}

// HandleFindOneByPageID tìm connection theo pageId
func (h *ConnectionHandler) HandleFindOneByPageID(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	data, err := h.ConnectionService.FindOneByPageID(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateToken cập nhật page access token của một connection
func (h *ConnectionHandler) HandleUpdateToken(c fiber.Ctx) error {
	input := new(shopdto.ConnectionUpdateTokenInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	data, err := h.ConnectionService.UpdateToken(context.Background(), input)
	h.HandleResponse(c, data, err)
	return nil
}
