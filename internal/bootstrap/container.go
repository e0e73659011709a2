package bootstrap

import (
	"context"
	"log"
	"time"

	"brandkit-admin-be/internal/config"
	"brandkit-admin-be/internal/controller"
	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/internal/pkg/metrics"
	"brandkit-admin-be/internal/repository/memory"
	"brandkit-admin-be/internal/repository/unitofwork"
	"brandkit-admin-be/internal/service"
	"brandkit-admin-be/internal/websocket"
	catalogEvents "brandkit-admin-be/pkg/catalog/events"
	"brandkit-admin-be/pkg/imagegen"
	pktNats "brandkit-admin-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const productTypeCacheTTL = 5 * time.Minute

type Container struct {
	// Controllers
	SystemController        controller.ISystemController
	TopicController         controller.ITopicController
	EntityController        controller.IEntityController
	ProductTypeController   controller.IProductTypeController
	EntityProductController controller.IEntityProductController

	// Background services, started from main
	GenerationWorker service.IGenerationWorker
	AuditService     *service.GenerationAuditService

	WebSocketHub    *websocket.Hub
	MetricsRegistry *prometheus.Registry
	Logger          logger.ILogger

	closers []func()
}

func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	generationMetrics := metrics.NewGenerationMetrics(registry)

	// 2. Job Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)

	c := &Container{
		MetricsRegistry: registry,
		Logger:          sysLogger,
	}
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	} else {
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
		natsSub = nil
	} else {
		c.closers = append(c.closers, natsSub.Close)
	}

	rdb := newRedisClient(ctx, cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	wsLogger := logger.NewIsolatedLogger("logs/websocket.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run(ctx)
	c.WebSocketHub = wsHub

	// 4. Services
	eventPublisher := catalogEvents.NewNatsPublisher(natsPub, sysLogger)
	jobPublisher := service.NewPublisherService(cfg.Generation.Topic, pubSub)

	topicService := service.NewTopicService(uowFactory)
	entityService := service.NewEntityService(uowFactory)
	productTypeService := service.NewProductTypeService(uowFactory, memory.NewProductTypeCache(productTypeCacheTTL))
	entityProductService := service.NewEntityProductService(uowFactory)
	generationService := service.NewGenerationService(
		uowFactory,
		jobPublisher,
		eventPublisher,
		wsHub,
		generationMetrics,
		sysLogger,
		cfg.Generation.EnforceTransitions,
	)
	systemLogService := service.NewSystemLogService(sysLogger)

	c.GenerationWorker = service.NewGenerationWorker(
		pubSub,
		cfg.Generation.Topic,
		generationService,
		imagegen.NewPlaceholderGenerator(cfg.Generation.PlaceholderURL),
		generationMetrics,
		sysLogger,
	)
	c.AuditService = service.NewGenerationAuditService(natsSub, generationMetrics, sysLogger)

	// 5. Controllers
	c.SystemController = controller.NewSystemController(systemLogService)
	c.TopicController = controller.NewTopicController(topicService)
	c.EntityController = controller.NewEntityController(entityService)
	c.ProductTypeController = controller.NewProductTypeController(productTypeService)
	c.EntityProductController = controller.NewEntityProductController(entityProductService, generationService)

	return c
}

// Close releases bus and cache connections in reverse order of acquisition.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

// newRedisClient returns nil when Redis is unreachable; the hub then serves
// only its own connections.
func newRedisClient(ctx context.Context, url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}

	rdb := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (cross-instance fan-out disabled)", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
