package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"facebook-publisher-service/internal/adapters/facebook_api_client"
	logger_adapter "facebook-publisher-service/internal/adapters/logger"
	"facebook-publisher-service/internal/adapters/rest"
	"facebook-publisher-service/internal/configs"
	"facebook-publisher-service/internal/core/port"
	"facebook-publisher-service/internal/core/usecase"
	"facebook-publisher-service/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// App - основная структура приложения
type App struct {
	restServer   *rest.Server
	logger       port.LoggerPort
	fluentClient *fluent.Fluent
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// инициализация логеров
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
			TagPrefix: appConfig.AppName,
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

	// базовый логер приложения с контекстом
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// Инициализация исходящего адаптера (клиента Graph API).
	// Клиент один на весь процесс и внедряется через конструктор —
	// никакого неявного глобального состояния.
	facebookClient := facebook_api_client.NewClient(facebook_api_client.Config{
		BaseURL:     appConfig.Facebook.BaseURL,
		PageID:      appConfig.Facebook.PageID,
		AccessToken: appConfig.Facebook.AccessToken,
		AppID:       appConfig.Facebook.AppID,
		AppSecret:   appConfig.Facebook.AppSecret,
	})
	appLogger.Debug("Facebook client initialized", port.Fields{
		"base_url":        appConfig.Facebook.BaseURL,
		"has_credentials": appConfig.Facebook.PageID != "" && appConfig.Facebook.AccessToken != "",
	})

	// Инициализация use case'ов
	publishBatchUC := usecase.NewPublishBatchUseCase(facebookClient)
	publishPostUC := usecase.NewPublishPostUseCase(facebookClient)
	checkConnectionUC := usecase.NewCheckConnectionUseCase(facebookClient)
	getPageInfoUC := usecase.NewGetPageInfoUseCase(facebookClient)

	// Инициализация входящего адаптера (веб-сервера)
	handlers := rest.NewPublisherHandlers(publishBatchUC, publishPostUC, checkConnectionUC, getPageInfoUC)
	restServer := rest.NewServer(appConfig.Port, handlers, baseLogger)

	return &App{
		restServer:   restServer,
		logger:       appLogger,
		fluentClient: fluentClient,
	}, nil
}

// Run запускает приложение и управляет его жизненным циклом
func (a *App) Run() error {
	// Запускаем HTTP-сервер в отдельной горутине
	go func() {
		if err := a.restServer.Start(); err != nil {
			a.logger.Error("Failed to start REST server", err, nil)
			os.Exit(1) // Если сервер не может запуститься, это фатально
		}
	}()

	// Настройка Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	a.logger.Debug("Service is shutting down...", port.Fields{"signal": sig.String()})

	// Создаем контекст с таймаутом для завершения
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Корректно останавливаем сервер
	if err := a.restServer.Stop(ctx); err != nil {
		a.logger.Error("Server shutdown failed", err, nil)
		os.Exit(1)
	}

	a.logger.Info("Application shut down gracefully.", nil)
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}

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
