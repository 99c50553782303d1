package bootstrap

import (
	"context"
	"log"
	"time"

	"qa-live-be/internal/config"
	"qa-live-be/internal/controller"
	"qa-live-be/internal/pkg/logger"
	"qa-live-be/internal/repository/unitofwork"
	"qa-live-be/internal/service"
	"qa-live-be/pkg/cache"

	pktNats "qa-live-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QAController       controller.IQAController
	QuestionController controller.IQuestionController
	AnswerController   controller.IAnswerController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS (optional mirror of activity events)
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// Redis (optional read cache for QA detail lookups)
	var detailCache *cache.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. QA detail cache disabled", err)
	} else {
		detailCache = cache.NewStore(rdb, 5*time.Minute)
	}

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Events.ActivityTopic, pubSub, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Events.ActivityTopic, uowFactory, sysLogger)

	userResolver := service.NewUserResolverService(uowFactory)
	qaService := service.NewQAService(uowFactory, userResolver, publisherService, detailCache, sysLogger)
	questionService := service.NewQuestionService(uowFactory, userResolver, publisherService, sysLogger)
	answerService := service.NewAnswerService(uowFactory, userResolver, publisherService, sysLogger)

	// 4. Controllers
	return &Container{
		QAController:       controller.NewQAController(qaService),
		QuestionController: controller.NewQuestionController(questionService),
		AnswerController:   controller.NewAnswerController(answerService),

		ConsumerService: consumerService,
	}
}
