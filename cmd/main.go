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

	advanceStepHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/advance_step"
	cancelReservationHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/cancel_reservation"
	createDraftHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/create_draft"
	deleteDraftHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/delete_draft"
	enterDetailsHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/enter_details"
	getDraftHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/get_draft"
	getScheduleHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/get_schedule"
	getServicesHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/get_services"
	selectScheduleHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/select_schedule"
	selectServiceHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/select_service"
	stepBackHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/step_back"
	submitCheckoutHandler "github.com/apexshine/APX-ConfiguratorService/internal/api/handlers/submit_checkout"
	"github.com/apexshine/APX-ConfiguratorService/internal/api/middleware"
	"github.com/apexshine/APX-ConfiguratorService/internal/catalog"
	"github.com/apexshine/APX-ConfiguratorService/internal/config"
	"github.com/apexshine/APX-ConfiguratorService/internal/domain"
	draftRepo "github.com/apexshine/APX-ConfiguratorService/internal/infra/storage/draft"
	cancellationClient "github.com/apexshine/APX-ConfiguratorService/internal/integrations/cancellation"
	checkoutClient "github.com/apexshine/APX-ConfiguratorService/internal/integrations/checkout"
	configuratorService "github.com/apexshine/APX-ConfiguratorService/internal/service/configurator"
	cancelReservationUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/cancel_reservation"
	getScheduleUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/get_schedule"
	submitCheckoutUC "github.com/apexshine/APX-ConfiguratorService/internal/usecase/submit_checkout"
	"github.com/apexshine/APX-ConfiguratorService/pkg/logger"
	"github.com/apexshine/APX-ConfiguratorService/pkg/metrics"
	"github.com/apexshine/APX-ConfiguratorService/pkg/types"
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

	log.Info("Starting APX-ConfiguratorService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Собираем каталог: встроенный либо переопределённый в config.toml
	cat, err := buildCatalog(cfg.Catalog)
	if err != nil {
		log.Fatal("Failed to build catalog: %v", err)
	}
	log.Info("Catalog ready: %d services, %d time slots", len(cat.Services()), len(cat.TimeSlots()))

	// Хранилище черновиков в памяти процесса + фоновая очистка по TTL
	store := draftRepo.NewRepository(time.Duration(cfg.Drafts.TTLMinutes) * time.Minute)

	stopJanitorCh := make(chan struct{})
	go store.RunJanitor(
		time.Duration(cfg.Drafts.CleanupIntervalMinutes)*time.Minute,
		stopJanitorCh,
		func(active int) {
			if metricsCollector != nil {
				metricsCollector.DraftsActive.Set(float64(active))
			}
		},
	)
	log.Info("Draft store initialized (ttl=%dm, cleanup=%dm)",
		cfg.Drafts.TTLMinutes, cfg.Drafts.CleanupIntervalMinutes)

	// Интеграционные клиенты внешних сервисов
	var outboundMetrics interface {
		RecordOutbound(target string, outcome string, seconds float64)
	}
	if metricsCollector != nil {
		outboundMetrics = metricsCollector
	}

	checkout := checkoutClient.NewClient(
		cfg.CheckoutService.URL,
		time.Duration(cfg.CheckoutService.Timeout)*time.Second,
		log,
		outboundMetrics,
	)
	cancellation := cancellationClient.NewClient(
		cfg.CancellationService.URL,
		time.Duration(cfg.CancellationService.Timeout)*time.Second,
		log,
		outboundMetrics,
	)
	log.Info("Integration clients initialized (Checkout=%s timeout=%ds, Cancellation=%s timeout=%ds)",
		cfg.CheckoutService.URL, cfg.CheckoutService.Timeout,
		cfg.CancellationService.URL, cfg.CancellationService.Timeout)

	// Инициализируем use cases и сервисы
	scheduleUseCase := getScheduleUC.NewUseCase(cat, log)
	configurator := configuratorService.NewService(store, cat, scheduleUseCase, log)

	var submissionMetrics submitCheckoutUC.MetricsRecorder
	if metricsCollector != nil {
		submissionMetrics = metricsCollector
	}
	submitUseCase := submitCheckoutUC.NewUseCase(store, checkout, submissionMetrics, log)
	cancelUseCase := cancelReservationUC.NewUseCase(cancellation, log)

	// Инициализируем handlers
	createDraft := createDraftHandler.NewHandler(configurator, log)
	getDraft := getDraftHandler.NewHandler(configurator, log)
	deleteDraft := deleteDraftHandler.NewHandler(configurator, log)
	getServices := getServicesHandler.NewHandler(cat, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleUseCase, log)
	selectService := selectServiceHandler.NewHandler(configurator, log)
	selectSchedule := selectScheduleHandler.NewHandler(configurator, log)
	advanceStep := advanceStepHandler.NewHandler(configurator, log)
	stepBack := stepBackHandler.NewHandler(configurator, log)
	enterDetails := enterDetailsHandler.NewHandler(configurator, log)
	submitCheckout := submitCheckoutHandler.NewHandler(submitUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(cancelUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Каталог и расписание
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// Конфигуратор: жизненный цикл черновика
	api.HandleFunc("/drafts", createDraft.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}", getDraft.Handle).Methods(http.MethodGet)
	api.HandleFunc("/drafts/{draftId}", deleteDraft.Handle).Methods(http.MethodDelete)

	// Конфигуратор: переходы между шагами
	api.HandleFunc("/drafts/{draftId}/service", selectService.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/schedule", selectSchedule.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/back", stepBack.Handle).Methods(http.MethodPost)
	api.HandleFunc("/drafts/{draftId}/details", enterDetails.Handle).Methods(http.MethodPost)

	// Отправка на оплату и отмена по токену
	api.HandleFunc("/drafts/{draftId}/submit", submitCheckout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	close(stopJanitorCh)

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

// buildCatalog собирает каталог из config.toml либо возвращает встроенный
func buildCatalog(override *config.CatalogConfig) (*catalog.Catalog, error) {
	if override == nil {
		return catalog.Default(), nil
	}

	services := make([]domain.Service, 0, len(override.Services))
	for _, svc := range override.Services {
		services = append(services, domain.Service{
			ID:            svc.ID,
			Title:         svc.Title,
			Price:         svc.Price,
			DurationLabel: svc.Duration,
			Description:   svc.Description,
		})
	}

	slots := make([]domain.TimeSlot, 0, len(override.TimeSlots))
	for _, label := range override.TimeSlots {
		slots = append(slots, types.SlotTime(label))
	}

	return catalog.New(services, slots)
}
