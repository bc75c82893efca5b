package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/allseasons/tiredepot/internal/cache"
	"github.com/allseasons/tiredepot/internal/custody"
	"github.com/allseasons/tiredepot/internal/db"
	"github.com/allseasons/tiredepot/internal/depot"
	"github.com/allseasons/tiredepot/internal/kafka"
	"github.com/allseasons/tiredepot/internal/label"
	"github.com/allseasons/tiredepot/internal/logger"
	"github.com/allseasons/tiredepot/internal/reminder"
	"github.com/allseasons/tiredepot/internal/repository/postgresql"
	"github.com/allseasons/tiredepot/internal/server"
	"github.com/allseasons/tiredepot/internal/sms"
)

const (
	defaultPort    = "9000"
	statusCacheTTL = 30 * time.Second
	sweepSchedule  = "0 9 * * *"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zl := logger.New()
	defer func() { _ = zl.Sync() }()

	dbPool, err := db.NewDb(ctx)
	if err != nil {
		fmt.Println("Database init error:", err)
		return
	}
	db.InitAdmin(dbPool)

	layoutRepo := postgresql.NewLayoutRepo(dbPool)
	slotRepo := postgresql.NewSlotRepo(dbPool)
	custodyRepo := postgresql.NewCustodyRepo(dbPool)
	historyRepo := postgresql.NewCustodyHistoryRepo(dbPool)
	outboxRepo := postgresql.NewOutboxTaskRepo(dbPool)
	settingsRepo := postgresql.NewReminderSettingsRepo(dbPool)
	deliveryRepo := postgresql.NewReminderDeliveryRepo(dbPool)
	statsRepo := postgresql.NewReminderStatsRepo(dbPool)
	userRepo := postgresql.NewUserRepo(dbPool)

	registry := depot.NewRegistry(layoutRepo, slotRepo)
	allocator := depot.NewAllocator()

	custodySvc := custody.NewService(
		registry,
		allocator,
		custodyRepo,
		historyRepo,
		outboxRepo,
		label.NewQRRenderer(),
		zl,
	)

	reminderEngine := reminder.NewEngine(
		settingsRepo,
		deliveryRepo,
		statsRepo,
		custodyRepo,
		sms.NewConsoleSender(),
		sms.NewStaticDirectory(nil),
		zl,
	)

	producer := newProducer(zl)
	publisher := kafka.NewPublisher(dbPool, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	srv := server.New(registry, custodySvc, reminderEngine, userRepo, cache.NewStatusCache(statusCacheTTL), zl)

	sweeper := cron.New()
	if _, err := sweeper.AddFunc(sweepSchedule, func() {
		if err := reminderEngine.RunDueSweeps(context.Background()); err != nil {
			zl.Error("scheduled reminder sweep failed", zap.Error(err))
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reminder sweep: %v", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(port())
	})

	g.Go(func() error {
		publisher.Run(gCtx)
		return nil
	})

	g.Go(func() error {
		sweeper.Start()
		<-gCtx.Done()
		<-sweeper.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		publisher.Shutdown()
		return srv.Shutdown(shutdownCtx)
	})

	log.Println("Server started on port " + port())

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

func port() string {
	if p := os.Getenv("HTTP_PORT"); p != "" {
		return p
	}
	return defaultPort
}

func newProducer(zl *zap.Logger) kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		zl.Info("KAFKA_BROKERS not set, depot events go to stdout")
		return kafka.NewConsoleProducer()
	}
	return kafka.NewWriterProducer(strings.Split(brokers, ","))
}
