// File: fritidsbo/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fritidsbo/config"
	"fritidsbo/database"
	bildRepo "fritidsbo/database/repository/bild"
	fastighetRepo "fritidsbo/database/repository/fastighet"
	reservationRepo "fritidsbo/database/repository/reservation"
	"fritidsbo/handlers"
	"fritidsbo/middleware"
	"fritidsbo/routes"
	"fritidsbo/services/booking"
	"fritidsbo/services/fastighet"
	"fritidsbo/services/tasks"
	"fritidsbo/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to close database client: %v", err)
		}
	}()

	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), mongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(routes.CORSMiddleware())

	// repositories.
	resRepo := reservationRepo.NewMongoReservationRepo(mongoClient, config.AppConfig.DatabaseName)
	propRepo := fastighetRepo.NewMongoFastighetRepo(mongoClient, config.AppConfig.DatabaseName)
	imgRepo := bildRepo.NewMongoBildRepo(mongoClient, config.AppConfig.DatabaseName)

	// services.
	policy := booking.OverlapPolicy{BlockCancelled: config.AppConfig.BookingBlockCancelled}
	bookingService := booking.NewDefaultBookingService(resRepo, policy, logger)

	fastighetService := &fastighet.DefaultFastighetService{
		Repo:            propRepo,
		BildRepo:        imgRepo,
		ReservationRepo: resRepo,
		Cache:           utils.GetCacheClient(),
		Logger:          logger,
	}

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	fastighetHandler := handlers.NewFastighetHandler(fastighetService, logger)

	routes.RegisterRoutes(router, bookingHandler, fastighetHandler)

	// Background expiry of stale unconfirmed reservations.
	var (
		taskServer *asynq.Server
		scheduler  *asynq.Scheduler
	)
	if config.AppConfig.BookingExpiryEnabled {
		redisOpt := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
		}

		mux := asynq.NewServeMux()
		mux.Handle(tasks.TypeExpireReservations, &tasks.ExpiryHandler{
			Booking: bookingService,
			Logger:  logger,
		})

		taskServer = asynq.NewServer(redisOpt, asynq.Config{Concurrency: 1})
		if err := taskServer.Start(mux); err != nil {
			logger.Sugar().Fatalf("main: failed to start task server: %v", err)
		}

		expireTask, err := tasks.NewExpireTask(config.AppConfig.BookingExpiryDays)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to build expiry task: %v", err)
		}
		scheduler = asynq.NewScheduler(redisOpt, nil)
		if _, err := scheduler.Register("@every 24h", expireTask); err != nil {
			logger.Sugar().Fatalf("main: failed to schedule expiry task: %v", err)
		}
		if err := scheduler.Start(); err != nil {
			logger.Sugar().Fatalf("main: failed to start scheduler: %v", err)
		}
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if scheduler != nil {
		scheduler.Shutdown()
	}
	if taskServer != nil {
		taskServer.Shutdown()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
