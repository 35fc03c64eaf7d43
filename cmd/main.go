package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/xwear/shop-backend/internal/app"
	"github.com/xwear/shop-backend/internal/config"
	"github.com/xwear/shop-backend/internal/events"
	"github.com/xwear/shop-backend/internal/handler"
	"github.com/xwear/shop-backend/internal/notifier"
	"github.com/xwear/shop-backend/internal/postgres"
	"github.com/xwear/shop-backend/internal/repo"
	"github.com/xwear/shop-backend/internal/service"
	"github.com/xwear/shop-backend/pkg/cache"
	"github.com/xwear/shop-backend/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Shop Backend API
// @version         1.0
// @description     Документация HTTP API магазина
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to run migrations", postgres.Migrate(db))
	logger.Info("postgres connected")

	cartRepo := repo.NewCartRepo(db)
	catalogRepo := repo.NewCatalogRepo(db)
	deliveryRepo := repo.NewDeliveryRepo(db)
	orderRepo := repo.NewOrderRepo(db)
	configRepo := repo.NewConfigRepo(db)

	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	kafkaNotifier := notifier.NewKafkaNotifier(logger, conf.Kafka)
	defer kafkaNotifier.Close()
	dispatcher := events.NewDispatcher(logger, kafkaNotifier, conf.Kafka.QueueSize)

	cartService := service.NewCartService(logger, cartRepo, catalogRepo)
	checkoutService := service.NewCheckoutService(logger, txManager, cartRepo, catalogRepo, deliveryRepo, configRepo, orderRepo, dispatcher)
	orderService := service.NewOrderService(logger, txManager, orderRepo, orderCache, dispatcher)
	addressService := service.NewAddressService(logger, txManager, deliveryRepo)

	httpHandler := handler.NewHTTPHandler(logger, cartService, checkoutService, orderService, addressService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(orderCache, dispatcher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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
