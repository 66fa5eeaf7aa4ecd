// Package router đăng ký các route thuộc domain Shop: Merchant, Connection, ReplyRule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "chat_commerce/internal/api/router"
	shophdl "chat_commerce/internal/api/shop/handler"
)

// Register đăng ký tất cả route Shop lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	merchantHandler, err := shophdl.NewMerchantHandler()
	if err != nil {
		return fmt.Errorf("create merchant handler: %w", err)
	}
	none := []fiber.Handler{}
	apirouter.RegisterRouteWithMiddleware(v1, "/merchant", "GET", "/find-by-page-id/:id", none, merchantHandler.HandleFindOneByPageID)
	r.RegisterCRUDRoutes(v1, "/merchant", merchantHandler, apirouter.ReadWriteConfig)

	connectionHandler, err := shophdl.NewConnectionHandler()
	if err != nil {
		return fmt.Errorf("create connection handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/connection", "GET", "/find-by-page-id/:id", none, connectionHandler.HandleFindOneByPageID)
	apirouter.RegisterRouteWithMiddleware(v1, "/connection", "PUT", "/update-token", none, connectionHandler.HandleUpdateToken)
	r.RegisterCRUDRoutes(v1, "/connection", connectionHandler, apirouter.ReadWriteConfig)

	replyRuleHandler, err := shophdl.NewReplyRuleHandler()
	if err != nil {
		return fmt.Errorf("create reply rule handler: %w", err)
	}
	apirouter.RegisterRouteWithMiddleware(v1, "/reply-rule", "GET", "/find-enabled-by-page-id/:id", none, replyRuleHandler.HandleFindEnabledByPageID)
	apirouter.RegisterRouteWithMiddleware(v1, "/reply-rule", "POST", "/seed-defaults", none, replyRuleHandler.HandleSeedDefaultRules)
	r.RegisterCRUDRoutes(v1, "/reply-rule", replyRuleHandler, apirouter.ReadWriteConfig)

	return nil
}
