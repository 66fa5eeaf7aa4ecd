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

// MerchantHandler xử lý các yêu cầu liên quan đến merchant
type MerchantHandler struct {
	*basehdl.BaseHandler[shopmodels.Merchant, shopdto.MerchantCreateInput, shopdto.MerchantUpdateInput]
	MerchantService *shopsvc.MerchantService
}

// NewMerchantHandler khởi tạo MerchantHandler mới
func NewMerchantHandler() (*MerchantHandler, error) {
	service, err := shopsvc.NewMerchantService()
	if err != nil {
		return nil, fmt.Errorf("failed to create merchant service: %v", err)
	}
	hdl := &MerchantHandler{MerchantService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[shopmodels.Merchant, shopdto.MerchantCreateInput, shopdto.MerchantUpdateInput](service)
	return hdl, nil
}

// HandleFindOneByPageID tìm merchant theo pageId
func (h *MerchantHandler) HandleFindOneByPageID(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	data, err := h.MerchantService.FindOneByPageID(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}
