package shophdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "chat_commerce/internal/api/base/handler"
	shopdto "chat_commerce/internal/api/shop/dto"
	shopmodels "chat_commerce/internal/api/shop/models"
	shopsvc "chat_commerce/internal/api/shop/service"
	"chat_commerce/internal/common"
)

// ReplyRuleHandler xử lý các yêu cầu liên quan đến reply rule
type ReplyRuleHandler struct {
	*basehdl.BaseHandler[shopmodels.ReplyRule, shopdto.ReplyRuleCreateInput, shopdto.ReplyRuleUpdateInput]
	ReplyRuleService *shopsvc.ReplyRuleService
}

// NewReplyRuleHandler khởi tạo ReplyRuleHandler mới
func NewReplyRuleHandler() (*ReplyRuleHandler, error) {
	service, err := shopsvc.NewReplyRuleService()
	if err != nil {
		return nil, fmt.Errorf("failed to create reply rule service: %v", err)
	}
	hdl := &ReplyRuleHandler{ReplyRuleService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[shopmodels.ReplyRule, shopdto.ReplyRuleCreateInput, shopdto.ReplyRuleUpdateInput](service)
	return hdl, nil
}

// HandleFindEnabledByPageID lấy các rule đang bật của một trang theo priority
func (h *ReplyRuleHandler) HandleFindEnabledByPageID(c fiber.Ctx) error {
	id := h.GetIDFromContext(c)
	data, err := h.ReplyRuleService.FindEnabledByPageID(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// SeedDefaultRulesInput dữ liệu đầu vào khi seed rule mặc định cho trang
type SeedDefaultRulesInput struct {
	PageId       string `json:"pageId" validate:"required"`
	BusinessType string `json:"businessType" validate:"required,oneof=retail cargo"`
}

// HandleSeedDefaultRules seed bộ rule mặc định cho một trang mới
func (h *ReplyRuleHandler) HandleSeedDefaultRules(c fiber.Ctx) error {
	input := new(SeedDefaultRulesInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err := h.ReplyRuleService.SeedDefaultRules(context.Background(), input.PageId, input.BusinessType)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	h.HandleResponse(c, fiber.Map{"pageId": input.PageId, "message": common.MsgSuccess}, nil)
	return nil
}
