package setup

import (
	"github.com/ocopmarket/order-gateway/internal/client"
	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/kafka"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/migrate"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/postgres"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/postgres/repository"
	redisinfra "github.com/ocopmarket/order-gateway/internal/infrastructure/redis"
	"github.com/ocopmarket/order-gateway/internal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.GatewayConfig
	Logger    *zap.Logger
	Metrics   *metrics.GatewayMetrics
	DB        *gorm.DB
	Backend   *client.BackendClient
	AuditRepo domain.AuditRepository
	Store     domain.SessionStore
	Guards    *session.Manager
	Publisher domain.EventPublisher
}

func InitializeDependencies(cfg *config.GatewayConfig, logger *zap.Logger) (*Dependencies, error) {
	gatewayMetrics := metrics.NewGatewayMetrics()

	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.GatewayDB.MigrationsPath); err != nil {
		return nil, err
	}
	auditRepo := repository.NewDefaultAuditRepository(db)

	redisClient := redisinfra.MustInitClient(cfg.Redis)
	store := redisinfra.NewSessionStore(redisClient, cfg.Session.TTL())

	guards := session.NewManager(store, auditRepo, session.NewClock(), cfg.Session, gatewayMetrics, logger)

	backend := client.NewBackendClient(cfg.BackendAPI, logger, gatewayMetrics)

	// Kafka is optional: a nil publisher means transitions are simply not
	// announced downstream.
	var eventPublisher domain.EventPublisher
	if cfg.KafkaService.Enabled {
		eventPublisher = kafka.NewKafkaPublisher(cfg.KafkaService.Brokers, cfg.KafkaService.Topic)
	}

	return &Dependencies{
		Config:    cfg,
		Logger:    logger,
		Metrics:   gatewayMetrics,
		DB:        db,
		Backend:   backend,
		AuditRepo: auditRepo,
		Store:     store,
		Guards:    guards,
		Publisher: eventPublisher,
	}, nil
}
