package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	appsvc "statusboard/internal/app"
	"statusboard/internal/config"
	"statusboard/internal/metrics"
	"statusboard/internal/model"
	"statusboard/internal/pkg/jwtutil"
	mysqlClient "statusboard/internal/platform/mysql"
	rabbitmqClient "statusboard/internal/platform/rabbitmq"
	"statusboard/internal/repository"
	"statusboard/internal/repository/memory"
	"statusboard/internal/worker"
)

type App struct {
	Config            *config.Config
	MySQL             *gorm.DB
	MQConn            *amqp.Connection
	ActivityPublisher *rabbitmqClient.ActivityPublisher
	ActivityWorker    *worker.ActivityPersistWorker

	Users      appsvc.UserStore
	Statuses   appsvc.StatusStore
	Activities appsvc.ActivityStore
	Pokemon    appsvc.PokemonStore
	Activity   *appsvc.ActivityRecorder

	Registry *prometheus.Registry
	Metrics  *metrics.Collector
	Tokens   *jwtutil.Manager
	Clock    clockwork.Clock

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	return NewWithConfig(ctx, cfg, clockwork.NewRealClock())
}

// NewWithConfig opens the storage and messaging backends selected by cfg.
// On error everything opened so far is closed again.
func NewWithConfig(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (*App, error) {
	a := newApp(cfg, clock)

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		a.useMemoryStores()
	default:
		mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
		if err != nil {
			return nil, err
		}
		a.MySQL = mysqlDB
		if err := mysqlDB.AutoMigrate(&model.User{}, &model.Status{}, &model.Activity{}, &model.Pokemon{}); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("auto migrate tables failed: %w", err)
		}
		a.Users = repository.NewUserRepository(mysqlDB)
		a.Statuses = repository.NewStatusRepository(mysqlDB)
		a.Activities = repository.NewActivityRepository(mysqlDB)
		a.Pokemon = repository.NewPokemonRepository(mysqlDB)
	}

	if cfg.RabbitMQ.Enabled {
		mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.MQConn = mqConn
		a.ActivityPublisher = rabbitmqClient.NewActivityPublisher(mqConn, cfg.RabbitMQ.ActivityQueue)

		a.ActivityWorker = worker.NewActivityPersistWorker(mqConn, a.Activities, cfg.RabbitMQ.ActivityQueue)
		if err := a.ActivityWorker.Start(ctx); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("start activity worker failed: %w", err)
		}
		a.Activity = appsvc.NewActivityRecorder(a.ActivityPublisher, a.Activities, clock)
	} else {
		a.Activity = appsvc.NewActivityRecorder(nil, a.Activities, clock)
	}

	log.Info().
		Str("storage", cfg.Storage.Driver).
		Bool("rabbitmq", cfg.RabbitMQ.Enabled).
		Msg("application resources ready")
	return a, nil
}

// NewInMemory builds an App on in-memory stores with no external
// dependencies. Used by tests and local runs.
func NewInMemory(cfg *config.Config, clock clockwork.Clock) *App {
	a := newApp(cfg, clock)
	a.Config.Storage.Driver = config.StorageMemory
	a.Config.RabbitMQ.Enabled = false
	a.useMemoryStores()
	a.Activity = appsvc.NewActivityRecorder(nil, a.Activities, clock)
	return a
}

func newApp(cfg *config.Config, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &App{
		Config:    cfg,
		Registry:  registry,
		Metrics:   metrics.NewCollector(registry),
		Tokens:    jwtutil.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute, clock),
		Clock:     clock,
		StartedAt: clock.Now(),
	}
}

func (a *App) useMemoryStores() {
	users := memory.NewUserRepository()
	a.Users = users
	a.Statuses = memory.NewStatusRepository(users)
	a.Activities = memory.NewActivityRepository()
	a.Pokemon = memory.NewPokemonRepository()
}

func (a *App) Close() error {
	var closeErr error
	if a.ActivityWorker != nil {
		a.ActivityWorker.Close()
	}
	if a.ActivityPublisher != nil {
		if err := a.ActivityPublisher.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
