package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"sharenotes-be/internal/config"
	"sharenotes-be/internal/controller"
	"sharenotes-be/internal/pkg/logger"
	"sharenotes-be/internal/repository/unitofwork"
	"sharenotes-be/internal/service"
	"sharenotes-be/pkg/export"
	pkgNats "sharenotes-be/pkg/nats"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	UserController    controller.IUserController
	RequestController controller.IRequestController
	NoteController    controller.INoteController
	ShareController   controller.IShareController

	// Background services, run by main.go
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var natsPub *pkgNats.Publisher
	if cfg.Events.NatsEnabled {
		var err error
		natsPub, err = pkgNats.NewPublisher(cfg.Events.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS publisher: %v", err)
			natsPub = nil
		}
	}

	publisherService := service.NewPublisherService(pubSub, cfg.Events.AuditTopic, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.AuditTopic, sysLogger)

	renderCache := export.NewRenderCache(cfg.Export.CacheTTL)

	// Services
	authService := service.NewAuthService(uowFactory, cfg.Auth)
	userService := service.NewUserService(uowFactory)
	requestService := service.NewRequestService(uowFactory, publisherService)
	noteService := service.NewNoteService(uowFactory, renderCache)
	shareService := service.NewShareService(uowFactory, publisherService)

	return &Container{
		AuthController:    controller.NewAuthController(authService, cfg.Auth.TokenExpiry),
		UserController:    controller.NewUserController(userService),
		RequestController: controller.NewRequestController(requestService),
		NoteController:    controller.NewNoteController(noteService),
		ShareController:   controller.NewShareController(shareService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
