// Package convsvc - Test Transition: bảng chuyển bước, rẽ nhánh cargo, merge TempData.
package convsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	convmodels "chat_commerce/internal/api/conversation/models"
	shopmodels "chat_commerce/internal/api/shop/models"
)

func TestTransition_Table(t *testing.T) {
	tests := []struct {
		name         string
		step         convmodels.Step
		businessType string
		text         string
		wantNext     convmodels.Step
		wantSaveKey  string
	}{
		{"product sang qty", convmodels.StepAskProduct, shopmodels.BusinessTypeRetail, "Áo xanh", convmodels.StepAskQty, FieldProduct},
		{"qty sang address", convmodels.StepAskQty, shopmodels.BusinessTypeRetail, "2", convmodels.StepAskAddress, FieldQty},
		{"address sang payment voi retail", convmodels.StepAskAddress, shopmodels.BusinessTypeRetail, "123 Lê Lợi", convmodels.StepAskPayment, FieldAddress},
		{"address sang done voi cargo", convmodels.StepAskAddress, shopmodels.BusinessTypeCargo, "123 Lê Lợi", convmodels.StepDone, FieldAddress},
		{"payment sang reference", convmodels.StepAskPayment, shopmodels.BusinessTypeRetail, "COD", convmodels.StepAskReference, FieldPaymentMethod},
		{"reference sang done", convmodels.StepAskReference, shopmodels.BusinessTypeRetail, "REF123", convmodels.StepDone, FieldReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Transition(tt.step, tt.businessType, tt.text)
			assert.Equal(t, tt.wantNext, res.Next)
			assert.NotEmpty(t, res.Reply)
			require.Len(t, res.Save, 1)
			assert.Equal(t, tt.text, res.Save[tt.wantSaveKey])
		})
	}
}

func TestTransition_UnknownStepRestarts(t *testing.T) {
	for _, step := range []convmodels.Step{"", "WEIRD", convmodels.StepDone} {
		res := Transition(step, shopmodels.BusinessTypeRetail, "bất kỳ")
		assert.Equal(t, convmodels.StepAskProduct, res.Next)
		assert.NotEmpty(t, res.Reply)
		assert.Empty(t, res.Save, "bước lạ không được lưu trường nào")
	}
}

func TestTransition_RetailFullScenario(t *testing.T) {
	// Kịch bản retail đầy đủ 5 bước, TempData gom dần không mất trường cũ
	tempData := map[string]string{}
	step := convmodels.StepAskProduct
	inputs := []string{"Blue Shirt", "2", "123 Main St", "COD", "REF123"}

	for _, input := range inputs {
		res := Transition(step, shopmodels.BusinessTypeRetail, input)
		for k, v := range res.Save {
			tempData[k] = v
		}
		step = res.Next
	}

	assert.Equal(t, convmodels.StepDone, step)
	assert.Equal(t, map[string]string{
		FieldProduct:       "Blue Shirt",
		FieldQty:           "2",
		FieldAddress:       "123 Main St",
		FieldPaymentMethod: "COD",
		FieldReference:     "REF123",
	}, tempData)
}

func TestTransition_CargoShortScenario(t *testing.T) {
	// Cargo kết thúc ngay sau address, không hỏi thanh toán
	tempData := map[string]string{}
	step := convmodels.StepAskProduct
	inputs := []string{"Thùng hàng 20kg", "1", "456 Trần Phú"}

	for _, input := range inputs {
		res := Transition(step, shopmodels.BusinessTypeCargo, input)
		for k, v := range res.Save {
			tempData[k] = v
		}
		step = res.Next
	}

	assert.Equal(t, convmodels.StepDone, step)
	assert.Equal(t, "456 Trần Phú", tempData[FieldAddress])
	_, hasPayment := tempData[FieldPaymentMethod]
	assert.False(t, hasPayment)
}

func TestBuildOrderFromConversation_StatusDefaults(t *testing.T) {
	conv := convmodels.Conversation{
		PageId:   "page-1",
		SenderId: "user-1",
		TempData: map[string]string{
			FieldProduct:       "Blue Shirt",
			FieldQty:           "2",
			FieldAddress:       "123 Main St",
			FieldPaymentMethod: "COD",
			FieldReference:     "REF123",
		},
	}

	retail := BuildOrderFromConversation(conv, shopmodels.BusinessTypeRetail)
	assert.Equal(t, "Blue Shirt", retail.Product)
	assert.Equal(t, "2", retail.Qty)
	assert.Equal(t, convmodels.OrderStatusNew, retail.OrderStatus)
	assert.Equal(t, convmodels.PaymentPending, retail.PaymentStatus)
	assert.Equal(t, convmodels.ShippingNone, retail.ShippingStatus)

	cargo := BuildOrderFromConversation(conv, shopmodels.BusinessTypeCargo)
	assert.Equal(t, convmodels.PaymentNone, cargo.PaymentStatus)
	assert.Equal(t, convmodels.ShippingNone, cargo.ShippingStatus)
}
