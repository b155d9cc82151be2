package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"listing-service/internal/adapters/confirm"
	logger_adapter "listing-service/internal/adapters/logger"
	"listing-service/internal/adapters/memstore"
	random_adapter "listing-service/internal/adapters/random"
	"listing-service/internal/adapters/rest"
	"listing-service/internal/adapters/upstream"
	"listing-service/internal/configs"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/usecase"
	"listing-service/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App – структура приложения
type App struct {
	config       *configs.AppConfig
	apiServer    *rest.Server
	fluentClient *fluent.Fluent
	logger       port.LoggerPort

	loadListingsUC *usecase.LoadListingsUseCase
}

// NewApp создает новый экземпляр приложения.
// Это "Composition Root", где все зависимости создаются и связываются.
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName, // Используем имя приложения как префикс
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИНИЦИАЛИЗАЦИЯ ИСХОДЯЩИХ АДАПТЕРОВ ---
	var randomSource *random_adapter.Source
	if appConfig.RandomSeed != 0 {
		randomSource = random_adapter.NewSeededSource(appConfig.RandomSeed)
	} else {
		randomSource = random_adapter.NewSource()
	}

	upstreamClient := upstream.NewClient(upstream.ClientConfig{
		URL:        appConfig.Upstream.URL,
		Timeout:    time.Duration(appConfig.Upstream.TimeoutSec) * time.Second,
		MaxRetries: appConfig.Upstream.MaxRetries,
	}, randomSource)

	listingStore := memstore.NewListingStore(baseLogger)
	confirmer := confirm.NewRequestConfirmer(baseLogger)

	appLogger.Info("All outgoing adapters initialized.", nil)

	// --- 4. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	loadListingsUseCase := usecase.NewLoadListingsUseCase(upstreamClient, listingStore)
	browseListingsUseCase := usecase.NewBrowseListingsUseCase(listingStore)
	getListingUseCase := usecase.NewGetListingUseCase(listingStore)
	addListingUseCase := usecase.NewAddListingUseCase(listingStore)
	cycleStatusUseCase := usecase.NewCycleStatusUseCase(listingStore)
	removeListingUseCase := usecase.NewRemoveListingUseCase(listingStore, confirmer)

	appLogger.Info("All use cases initialized.", nil)

	// --- 5. REST API Server ---
	listingHandlers := rest.NewListingHandler(
		loadListingsUseCase,
		browseListingsUseCase,
		getListingUseCase,
		addListingUseCase,
		cycleStatusUseCase,
		removeListingUseCase,
	)

	apiServer := rest.NewServer(appConfig.Rest.PORT, listingHandlers, appConfig.Rest.AllowedOrigins, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:         appConfig,
		apiServer:      apiServer,
		fluentClient:   fluentClient,
		logger:         appLogger,
		loadListingsUC: loadListingsUseCase,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Единый контекст приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	errorsCh := make(chan error, 1)

	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			errorsCh <- fmt.Errorf("failed to start HTTP server: %w", err)
		}
	}()

	// Первичная загрузка листингов выполняется фоном при старте (аналог
	// загрузки при монтировании экрана). Контекст приложения служит
	// "mounted"-гардом: при остановке сервиса результат отбрасывается.
	go func() {
		loadCtx := contextkeys.ContextWithLogger(appCtx, a.logger)
		report, err := a.loadListingsUC.Execute(loadCtx)
		if err != nil {
			a.logger.Error("Initial listings load failed", err, nil)
			return
		}
		a.logger.Info("Initial listings load finished", port.Fields{
			"loaded": report.Loaded, "degraded": report.Degraded,
		})
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case err := <-errorsCh:
		a.logger.Error("A critical component failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}
