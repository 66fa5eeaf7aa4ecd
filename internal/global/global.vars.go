package global

import (
	"chat_commerce/config"
	"chat_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Merchants     string // Tên collection cho người bán (chủ trang)
	Connections   string // Tên collection cho kết nối trang Facebook
	ReplyRules    string // Tên collection cho quy tắc trả lời tự động
	Conversations string // Tên collection cho trạng thái hội thoại đặt hàng
	Messages      string // Tên collection cho tin nhắn đã nhận
	Orders        string // Tên collection cho đơn hàng
	WebhookLogs   string // Tên collection cho log webhook nhận được
}

// Các biến toàn cục
var Validate *validator.Validate                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                    // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration       // Cấu hình của server
var MongoDB_ColNames = *new(MongoDB_CollectionName)  // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
