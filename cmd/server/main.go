package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/fluxora/configs"
	"github.com/maheshrc27/fluxora/internal/api"
	"github.com/maheshrc27/fluxora/internal/calendar"
	job "github.com/maheshrc27/fluxora/internal/jobs"
	"github.com/maheshrc27/fluxora/internal/logging"
	"github.com/maheshrc27/fluxora/internal/metrics"
	"github.com/maheshrc27/fluxora/internal/queue"
	"github.com/maheshrc27/fluxora/internal/repository"
	"github.com/maheshrc27/fluxora/internal/seed"
	"github.com/maheshrc27/fluxora/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	slog.SetDefault(logging.New(cfg.LogLevel))

	loc := cfg.Location()
	now := time.Now
	today := calendar.Today(now(), loc)
	ctx := context.Background()

	stores := seed.Stores{
		Slots:     repository.NewSlotRepository(),
		Content:   repository.NewContentRepository(),
		Accounts:  repository.NewSocialAccountRepository(),
		Campaigns: repository.NewCampaignRepository(),
		Analytics: repository.NewAnalyticsRepository(today),
	}

	seedFile, err := seed.Load(cfg.SeedPath)
	if err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}
	dataset, err := seedFile.Resolve(today, now())
	if err != nil {
		log.Fatalf("Invalid seed data: %v", err)
	}
	dataset.Apply(ctx, stores)

	m := metrics.New()

	var storage service.ObjectStorage
	r2Service, err := service.NewR2Service(ctx, cfg.R2)
	if err != nil {
		log.Fatalf("Failed to configure R2: %v", err)
	}
	if r2Service != nil {
		storage = r2Service
	}

	var (
		asynqClient *asynq.Client
		exportQueue service.ExportEnqueuer
		redisConn   asynq.RedisClientOpt
	)
	if cfg.RedisURI != "" && storage != nil {
		redisConn = asynq.RedisClientOpt{Addr: cfg.RedisURI}
		asynqClient = asynq.NewClient(redisConn)
		defer asynqClient.Close()
		exportQueue = queue.NewEnqueuer(asynqClient)
	}

	authService := service.NewAuthService(*cfg, dataset.User)
	scheduleService := service.NewScheduleService(stores.Slots, stores.Content, m, now, loc)
	contentService := service.NewContentService(stores.Content, stores.Slots, storage, now)
	exportService := service.NewExportService(scheduleService, stores.Content, storage, exportQueue, m, now)

	app := api.NewApp(*cfg, api.Services{
		Auth:      authService,
		Schedule:  scheduleService,
		Content:   contentService,
		Preview:   service.NewPreviewService(m),
		Export:    exportService,
		Dashboard: service.NewDashboardService(stores.Slots, stores.Content, stores.Accounts, stores.Analytics, now, loc),
		Accounts:  service.NewAccountService(stores.Accounts, now),
		Campaigns: service.NewCampaignService(stores.Campaigns, now),
		Analytics: service.NewAnalyticsService(stores.Analytics),
	}, m)

	// cron jobs
	sweepJob := job.NewPublishSweepJob(stores.Slots, stores.Content, m, now, loc)

	c := cron.New()
	if err := c.AddFunc(cfg.SweepSchedule, sweepJob.Run); err != nil {
		log.Fatalf("Invalid sweep schedule %q: %v", cfg.SweepSchedule, err)
	}
	c.Start()
	defer c.Stop()

	var asynqServer *asynq.Server
	if asynqClient != nil {
		asynqServer = asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})
		worker := queue.NewQueue(exportService)

		go func() {
			log.Println("Starting the Asynq server...")
			if err := asynqServer.Run(worker.Mux()); err != nil {
				log.Fatalf("Could not start Asynq server: %v", err)
			}
		}()
	} else {
		slog.Info("background exports disabled; calendar exports are returned inline")
	}

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, asynqServer)
}

func gracefulShutdown(app *fiber.App, asynqServer *asynq.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	if asynqServer != nil {
		asynqServer.Shutdown()
	}
	log.Println("Server shutdown complete.")
}
