package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/romahawk/flowlogix/internal/app"
	"github.com/romahawk/flowlogix/internal/config"
	"github.com/romahawk/flowlogix/internal/handler"
	"github.com/romahawk/flowlogix/internal/postgres"
	"github.com/romahawk/flowlogix/internal/repo"
	"github.com/romahawk/flowlogix/internal/seed"
	"github.com/romahawk/flowlogix/internal/service"
	"github.com/romahawk/flowlogix/pkg/cache"
	"github.com/romahawk/flowlogix/pkg/trm"

	"github.com/joho/godotenv"
)

// demoUserID owns seeded orders.
const demoUserID = 1

// @title           FlowLogix Order Tracking API
// @version         1.0
// @description     Purchase order timeline tracking and query HTTP API
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	ordersRepo := repo.NewOrdersRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)

	orderService := service.NewOrderService(logger, txManager, ordersRepo, orderCache)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderService)
	httpHandler := handler.NewHTTPHandler(logger, orderService)
	handler.RegisterMetrics()

	// Seeding runs before the warm-up so a fresh install warms from the
	// seeded rows.
	starters := []app.Starter{orderCache}
	if conf.Seed.Enabled {
		starters = append(starters, seed.New(logger, orderService, demoUserID, conf.Seed.Count))
	}
	starters = append(starters, cacheWarmUpAdapter{svc: orderService, count: conf.Cache.Capacity})

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(starters...)

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

type warmUpper interface {
	WarmUpCache(ctx context.Context, count int) error
}

type cacheWarmUpAdapter struct {
	svc   warmUpper
	count int
}

func (a cacheWarmUpAdapter) Start(ctx context.Context) error {
	return a.svc.WarmUpCache(ctx, a.count)
}
