package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/bot_info"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/cancel_scheduled"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/edit_message"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/health"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_chat_action"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_location"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_message"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/handlers/send_photo"
	"github.com/m04kA/SMC-TelegramGateway/internal/api/middleware"
	"github.com/m04kA/SMC-TelegramGateway/internal/config"
	"github.com/m04kA/SMC-TelegramGateway/internal/service/telegram"
	"github.com/m04kA/SMC-TelegramGateway/internal/usecase/start_message"
	"github.com/m04kA/SMC-TelegramGateway/internal/worker"
	"github.com/m04kA/SMC-TelegramGateway/pkg/logger"
	"github.com/m04kA/SMC-TelegramGateway/pkg/metrics"
	"github.com/m04kA/SMC-TelegramGateway/pkg/tgclient"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-TelegramGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиент Telegram Bot API
	clientOpts := []tgclient.Option{
		tgclient.WithLogger(log),
		tgclient.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Telegram.ClientTimeout) * time.Second,
		}),
	}
	if cfg.Telegram.APIURL != "" {
		clientOpts = append(clientOpts, tgclient.WithAPIURL(cfg.Telegram.APIURL))
	}
	client := tgclient.NewClient(cfg.Telegram.BotToken, clientOpts...)

	// Проверяем токен и доступность API
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	bot, err := client.GetMe(startupCtx)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to reach Telegram Bot API: %v", err)
	}
	log.Info("Telegram Bot API client initialized (@%s)", bot.UserName)

	// Инициализируем Telegram Service
	var telegramMetrics telegram.MetricsRecorder
	if metricsCollector != nil {
		telegramMetrics = metricsCollector
	}
	telegramSvc := telegram.NewService(client, telegramMetrics)
	log.Info("Telegram service initialized")

	// Инициализируем планировщик отложенных сообщений
	var schedulerMetrics worker.SchedulerMetrics
	if metricsCollector != nil {
		schedulerMetrics = metricsCollector
	}
	scheduler := worker.NewScheduler(telegramSvc, log, schedulerMetrics)
	scheduler.Start()
	log.Info("Message scheduler started")

	// Инициализируем poller входящих обновлений (если включен)
	var poller *worker.Poller
	if cfg.Poller.Enabled {
		startMessageUC := start_message.New(telegramSvc)
		poller = worker.NewPoller(client, startMessageUC, log, cfg.Poller.Limit, cfg.Poller.LongPoll)
		poller.Start()
		log.Info("Telegram update poller started (limit=%d, longpoll=%v)", cfg.Poller.Limit, cfg.Poller.LongPoll)
	}

	// Инициализируем handlers
	healthHandler := health.NewHandler()
	botInfoHandler := bot_info.NewHandler(telegramSvc, log)
	sendMessageHandler := send_message.NewHandler(telegramSvc, scheduler, log)
	sendLocationHandler := send_location.NewHandler(telegramSvc, scheduler, log)
	sendPhotoHandler := send_photo.NewHandler(telegramSvc, scheduler, log)
	sendChatActionHandler := send_chat_action.NewHandler(telegramSvc, log)
	editMessageHandler := edit_message.NewHandler(telegramSvc, log)
	cancelScheduledHandler := cancel_scheduled.NewHandler(scheduler, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Публичные endpoints
	r.HandleFunc("/health", healthHandler.Handle).Methods(http.MethodGet)

	// Metrics endpoint (публичный)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API v1 endpoints
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/bot", botInfoHandler.Handle).Methods(http.MethodGet)
	api.HandleFunc("/messages", sendMessageHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/messages/location", sendLocationHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/messages/photo", sendPhotoHandler.Handle).Methods(http.MethodPost)
	api.HandleFunc("/messages/{message_id}", editMessageHandler.Handle).Methods(http.MethodPut)
	api.HandleFunc("/messages/scheduled/{id}", cancelScheduledHandler.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/chats/{chat_id}/action", sendChatActionHandler.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем HTTP сервер
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем worker компоненты перед сервером
	if poller != nil {
		poller.Stop()
	}
	scheduler.Stop()
	log.Info("Worker components stopped")

	// Graceful shutdown HTTP сервера
	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
