package shopsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basesvc "chat_commerce/internal/api/base/service"
	shopdto "chat_commerce/internal/api/shop/dto"
	shopmodels "chat_commerce/internal/api/shop/models"
	"chat_commerce/internal/common"
	"chat_commerce/internal/global"
)

// ConnectionService là cấu trúc chứa các phương thức liên quan đến kết nối trang Facebook
type ConnectionService struct {
	*basesvc.BaseServiceMongoImpl[shopmodels.Connection]
}

// NewConnectionService tạo mới ConnectionService
func NewConnectionService() (*ConnectionService, error) {
	coll, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Connections)
	if !exist {
		return nil, fmt.Errorf("failed to get connections collection: %v", common.ErrNotFound)
	}
	return &ConnectionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[shopmodels.Connection](coll),
	}, nil
}

// FindOneByPageID tìm connection theo pageId của trang Facebook
func (s *ConnectionService) FindOneByPageID(ctx context.Context, pageID string) (shopmodels.Connection, error) {
	filter := bson.M{"pageId": pageID}
	var conn shopmodels.Connection
	err := s.Collection().FindOne(ctx, filter).Decode(&conn)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return conn, common.ErrNotFound
		}
		return conn, common.ConvertMongoError(err)
	}
	return conn, nil
}

// UpdateToken cập nhật page access token của một connection theo pageId
func (s *ConnectionService) UpdateToken(ctx context.Context, input *shopdto.ConnectionUpdateTokenInput) (*shopmodels.Connection, error) {
	conn, err := s.FindOneByPageID(ctx, input.PageId)
	if err != nil {
		return nil, err
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{"pageAccessToken": input.PageAccessToken},
	}
	updatedConn, err := s.BaseServiceMongoImpl.UpdateById(ctx, conn.ID, updateData)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return &updatedConn, nil
}
