package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"susuhub/app/echo-server/router"
	"susuhub/business/group"
	"susuhub/business/membership"
	"susuhub/business/message"
	"susuhub/business/transaction"
	userService "susuhub/business/user"
	"susuhub/internal/middleware"
	psqlRepo "susuhub/internal/repository/postgres"
	redisRepo "susuhub/internal/repository/redis"
	"susuhub/internal/rest"
	"susuhub/pkg/config"
	"susuhub/pkg/database"
	redisdb "susuhub/pkg/database/redis"
	"susuhub/pkg/logger"
	"susuhub/pkg/metrics"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting SusuHub", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", "error", err)
		}
	}()

	// Init validate
	validate := validator.New()

	// Init metrics
	metrics.Init()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	groupRepo := psqlRepo.NewGroupRepository(db)
	membershipRepo := psqlRepo.NewMembershipRepository(db)
	transactionRepo := psqlRepo.NewTransactionRepository(db)
	messageRepo := psqlRepo.NewMessageRepository(db)
	messageCache := redisRepo.NewMessageCache(redisClient)

	// Init service
	userSvc := userService.NewUserService(userRepo, validate)
	groupSvc := group.NewGroupService(groupRepo)
	membershipSvc := membership.NewMembershipService(membershipRepo)
	transactionSvc := transaction.NewTransactionService(transactionRepo)
	messageSvc := message.NewMessageService(messageRepo, messageCache)

	// Init handler
	timeout := time.Duration(cfg.Server.RequestTimeout) * time.Second
	userHandler := rest.NewUserHandler(userSvc, timeout)
	groupHandler := rest.NewGroupHandler(groupSvc, timeout)
	membershipHandler := rest.NewMembershipHandler(membershipSvc, timeout)
	transactionHandler := rest.NewTransactionHandler(transactionSvc, timeout)
	messageHandler := rest.NewMessageHandler(messageSvc, timeout)
	healthHandler := rest.NewHealthHandler()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Setup routes
	router.SetupGroupRoutes(e, groupHandler)
	router.SetupUserRoutes(e, userHandler, groupHandler)
	router.SetupTransactionRoutes(e, transactionHandler)
	router.SetupMessageRoutes(e, messageHandler)
	router.SetupMembershipRoutes(e, membershipHandler)
	router.SetupHealthRoutes(e, healthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
