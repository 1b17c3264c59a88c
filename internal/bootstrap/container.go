package bootstrap

import (
	"chat-history-be/internal/config"
	"chat-history-be/internal/gateway"
	"chat-history-be/internal/pkg/logger"
	"chat-history-be/internal/repository/unitofwork"
	"chat-history-be/internal/service"

	"gorm.io/gorm"
)

type Container struct {
	GatewayController *gateway.Controller
	Logger            logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Services
	appUserService := service.NewAppUserService(uowFactory)
	conversationService := service.NewConversationService(uowFactory, sysLogger)
	messageService := service.NewMessageService(uowFactory)
	elementService := service.NewElementService(uowFactory)

	// 3. Controllers
	return &Container{
		GatewayController: gateway.NewController(
			appUserService,
			conversationService,
			messageService,
			elementService,
			sysLogger,
		),
		Logger: sysLogger,
	}
}
