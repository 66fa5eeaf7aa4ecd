package shopsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "chat_commerce/internal/api/base/service"
	shopmodels "chat_commerce/internal/api/shop/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
)

// MerchantService là cấu trúc chứa các phương thức liên quan đến merchant
type MerchantService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Merchant]
}

// NewMerchantService tạo mới MerchantService
func NewMerchantService() (*MerchantService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Merchants)
	if !exist {
		return nil, fmt.Errorf("failed to get merchants collection: %v", common.ErrNotFound)
	}
	return &MerchantService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Merchant](coll),
	}, nil
}

// FindOneByPageID tìm merchant theo pageId của trang Facebook
func (s *MerchantService) FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Merchant, error) {
	filter := bson.M{"pageId": pageID}
	var merchant shopmodels.Merchant
	err := s.Collection().FindOne(ctx, filter).Decode(&merchant)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return merchant, common.ErrNotFound
		}
		return merchant, common.ConvertMongoError(err)
	}
	return merchant, nil
}
