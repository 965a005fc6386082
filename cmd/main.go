package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/pawtag/order-service/internal/app"
	"github.com/pawtag/order-service/internal/config"
	"github.com/pawtag/order-service/internal/entities"
	"github.com/pawtag/order-service/internal/events"
	"github.com/pawtag/order-service/internal/gateway"
	"github.com/pawtag/order-service/internal/handler"
	"github.com/pawtag/order-service/internal/idempotency"
	"github.com/pawtag/order-service/internal/middleware"
	"github.com/pawtag/order-service/internal/postgres"
	"github.com/pawtag/order-service/internal/repo"
	"github.com/pawtag/order-service/internal/service"
	"github.com/pawtag/order-service/internal/shipping"
	"github.com/pawtag/order-service/internal/sweeper"
	"github.com/pawtag/order-service/internal/tracing"
	"github.com/pawtag/order-service/pkg/trm"
	"github.com/prometheus/client_golang/prometheus"
)

// @title                       Pawtag Order Service API
// @version                     1.0
// @description                 Checkout, payment and fulfilment API for pet tag orders.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	tracer, err := tracing.New(ctx, conf.Tracing)
	panicIfErr("failed to init tracing", err)

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	txManager := trm.NewManager(db)
	ordersRepo := repo.NewOrdersRepo(db)
	paymentsRepo := repo.NewPaymentsRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	accountsRepo := repo.NewAccountsRepo(db)

	zones := shipping.NewCachedZones(repo.NewZonesRepo(db), conf.Shipping.ZonesCacheTTL)
	calculator := shipping.NewCalculator(zones)

	workers := []app.Worker{tracer, zones}

	var idem service.IdempotencyStore
	if conf.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     conf.Redis.Addr,
			Password: conf.Redis.Password,
			DB:       conf.Redis.DB,
		})
		idem = idempotency.NewRedisStore(rdb, conf.Redis.KeyTTL, conf.Redis.PendingTTL)
		workers = append(workers, closer{close: rdb.Close})
		logger.Info("idempotency keys enabled", slog.String("redis", conf.Redis.Addr))
	}

	var publisher service.EventPublisher
	if len(conf.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(logger, events.Config{
			Brokers:      conf.Kafka.Brokers,
			Topic:        conf.Kafka.Topic,
			BatchTimeout: conf.Kafka.BatchTimeout,
		})
		publisher = kafkaPublisher
		workers = append(workers, closer{close: kafkaPublisher.Close})
		logger.Info("order events enabled", slog.String("topic", conf.Kafka.Topic))
	}

	gw := gateway.NewSSLCommerz(logger, gateway.Config{
		BaseURL:   conf.Gateway.BaseURL,
		StoreID:   conf.Gateway.StoreID,
		StorePass: conf.Gateway.StorePass,
		Timeout:   conf.Gateway.Timeout,
	}, nil)

	opts := service.Options{
		Currency:    conf.Orders.Currency,
		Provider:    conf.Gateway.Provider,
		OrderTTL:    conf.Orders.TTL,
		DedupWindow: conf.Orders.DedupWindow,
	}
	orderService := service.NewOrderService(logger, txManager, ordersRepo, catalogRepo, calculator, idem, publisher, opts)
	paymentService := service.NewPaymentService(logger, txManager, ordersRepo, paymentsRepo, accountsRepo, gw, publisher,
		entities.ReturnURLs{
			Success: conf.Gateway.SuccessURL,
			Fail:    conf.Gateway.FailURL,
			Cancel:  conf.Gateway.CancelURL,
		}, opts)

	workers = append(workers, sweeper.New(logger, ordersRepo, publisher, sweeper.Config{
		Interval:      conf.Sweeper.Interval,
		CleanupWindow: conf.Sweeper.CleanupWindow,
	}))

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	handler.RegisterMetrics(prometheus.DefaultRegisterer)
	events.RegisterMetrics(prometheus.DefaultRegisterer)
	sweeper.RegisterMetrics(prometheus.DefaultRegisterer)
	middleware.RegisterMetrics(prometheus.DefaultRegisterer)

	auth := middleware.Auth(logger, []byte(conf.Auth.JWTSecret), conf.Auth.Issuer)
	frontend, _ := conf.GatewayRedirect()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, auth, orderService),
		handler.NewPaymentHandler(logger, auth, paymentService, frontend),
	)
	app.SetWorkers(workers...)
	app.SetHealthCheck(db.PingContext)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

// closer releases a client on shutdown.
type closer struct {
	close func() error
}

func (closer) Start(context.Context) error { return nil }

func (c closer) Stop() error { return c.close() }
