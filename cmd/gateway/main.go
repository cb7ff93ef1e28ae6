package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	appCompletion "github.com/modelshift-ai/modelshift-gateway/pkg/app/completion"
	appExecution "github.com/modelshift-ai/modelshift-gateway/pkg/app/execution"
	appProviderKey "github.com/modelshift-ai/modelshift-gateway/pkg/app/providerkey"
	"github.com/modelshift-ai/modelshift-gateway/pkg/common"
	"github.com/modelshift-ai/modelshift-gateway/pkg/config"
	handlers "github.com/modelshift-ai/modelshift-gateway/pkg/handlers/http"
	infraCache "github.com/modelshift-ai/modelshift-gateway/pkg/infra/cache"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/database"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/httpx"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/jwt"
	infraLogger "github.com/modelshift-ai/modelshift-gateway/pkg/infra/logger"
	_ "github.com/modelshift-ai/modelshift-gateway/pkg/infra/migrations"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/prometheus"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/providers/factory"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/repository"
	"github.com/modelshift-ai/modelshift-gateway/pkg/infra/secrets"
	"github.com/modelshift-ai/modelshift-gateway/pkg/middleware"
	"github.com/modelshift-ai/modelshift-gateway/pkg/server"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	logger := infraLogger.NewLogger()

	if err := config.Load("./config"); err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	cfg := config.GetConfig()

	prometheus.Initialize(prometheus.MetricsConfig{
		EnableLatency: cfg.Metrics.EnableLatency,
		EnableTokens:  cfg.Metrics.EnableTokens,
	})

	db, err := database.NewDB(logger, &database.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	defer db.Close()

	cacheClient, err := infraCache.NewClient(infraCache.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, logger)
	if err != nil {
		logger.Fatalf("failed to initialize cache: %v", err)
	}
	cacheClient.CreateTTLMap(infraCache.ProviderKeyTTLName, common.ProviderKeyCacheTTL)

	encryptor, err := secrets.NewAESEncryptor(cfg.Security.EncryptionKey)
	if err != nil {
		logger.Fatalf("failed to initialize encryptor: %v", err)
	}

	// repository
	providerKeyRepository := repository.NewProviderKeyRepository(db.DB)
	executionRepository := repository.NewExecutionRepository(db.DB)

	// upstream transport
	httpClient := httpx.NewFastHTTPClient(httpx.FastHTTPClientConfig{
		Timeout:         120 * time.Second,
		MaxConnsPerHost: 1024,
	})
	locator := factory.NewProviderLocator(cfg.Providers, httpClient, logger)

	// service
	keyFinder := appProviderKey.NewFinder(providerKeyRepository, cacheClient, logger)
	keyCreator := appProviderKey.NewCreator(providerKeyRepository, encryptor, cacheClient, logger)
	keyActivator := appProviderKey.NewActivator(providerKeyRepository, cacheClient, logger)
	keyDeleter := appProviderKey.NewDeleter(providerKeyRepository, cacheClient, logger)
	keyLister := appProviderKey.NewLister(providerKeyRepository)
	executionLister := appExecution.NewLister(executionRepository)
	executionFinder := appExecution.NewFinder(executionRepository)
	executionDeleter := appExecution.NewDeleter(executionRepository)
	completionService := appCompletion.NewService(
		keyFinder, encryptor, locator, executionRepository, cfg.Providers, logger,
	)

	jwtManager := jwt.NewJwtManager(&cfg.Auth)

	middlewareTransport := middleware.Transport{
		AuthMiddleware:          middleware.NewAuthMiddleware(logger, jwtManager),
		MetricsMiddleware:       middleware.NewMetricsMiddleware(logger),
		CORSMiddleware:          middleware.NewCORSMiddleware([]string{"*"}, nil, "86400"),
		PanicRecoveryMiddleware: middleware.NewPanicRecoveryMiddleware(logger),
	}

	handlerTransport := handlers.HandlerTransport{
		ProxyHandler:               handlers.NewProxyHandler(logger, completionService),
		ListProvidersHandler:       handlers.NewListProvidersHandler(logger, cfg.Providers),
		CreateProviderKeyHandler:   handlers.NewCreateProviderKeyHandler(logger, keyCreator, cfg.Providers),
		ListProviderKeysHandler:    handlers.NewListProviderKeysHandler(logger, keyLister),
		DeleteProviderKeyHandler:   handlers.NewDeleteProviderKeyHandler(logger, keyDeleter),
		ActivateProviderKeyHandler: handlers.NewActivateProviderKeyHandler(logger, keyActivator),
		ListExecutionsHandler:      handlers.NewListExecutionsHandler(logger, executionLister),
		GetExecutionHandler:        handlers.NewGetExecutionHandler(logger, executionFinder),
		DeleteExecutionHandler:     handlers.NewDeleteExecutionHandler(logger, executionDeleter),
		ClearExecutionsHandler:     handlers.NewClearExecutionsHandler(logger, executionDeleter),
		GetVersionHandler:          handlers.NewGetVersionHandler(logger),
	}

	srv := server.NewGatewayServer(server.GatewayServerDI{
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
		Config:              cfg,
		Logger:              logger,
	})

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	fmt.Println("shutting down server...")
	if err := srv.Shutdown(); err != nil {
		fmt.Println("error shutting down server:", err)
		os.Exit(1)
	}
	fmt.Println("server gracefully stopped")
}
