package convsvc

import (
	"context"
	"fmt"

	basesvc "chat_commerce/internal/api/base/service"
	convmodels "chat_commerce/internal/api/conversation/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
	shopmodels "chat_commerce/internal/api/shop/models"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[convmodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[convmodels.Order](coll),
	}, nil
}

// BuildOrderFromConversation dựng đơn hàng từ TempData của hội thoại hoàn tất.
// Hàm thuần, tách riêng để test không cần DB.
// paymentStatus = none với cargo (không thu hộ), còn lại pending.
func BuildOrderFromConversation(conv convmodels.Conversation, businessType string) convmodels.Order {
	paymentStatus := convmodels.PaymentPending
	if businessType == shopmodels.BusinessTypeCargo {
		paymentStatus = convmodels.PaymentNone
	}
	return convmodels.Order{
		PageId:         conv.PageId,
		SenderId:       conv.SenderId,
		Product:        conv.TempData[FieldProduct],
		Qty:            conv.TempData[FieldQty],
		Address:        conv.TempData[FieldAddress],
		PaymentMethod:  conv.TempData[FieldPaymentMethod],
		Reference:      conv.TempData[FieldReference],
		OrderStatus:    convmodels.OrderStatusNew,
		PaymentStatus:  paymentStatus,
		ShippingStatus: convmodels.ShippingNone,
	}
}

// CreateFromConversation tạo đơn hàng từ một hội thoại hoàn tất
func (s *OrderService) CreateFromConversation(ctx context.Context, conv convmodels.Conversation, businessType string) (convmodels.Order, error) {
	return s.BaseServiceMongoImpl.InsertOne(ctx, BuildOrderFromConversation(conv, businessType))
}
