package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelDragHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/cancel_drag"
	checkSlotHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/check_slot"
	dragStreamHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/drag_stream"
	endDragHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/end_drag"
	getDayScheduleHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_day_schedule"
	getDragStateHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_drag_state"
	getGridConfigHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_grid_config"
	getWeekOverviewHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/get_week_overview"
	startDragHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/start_drag"
	updateDragHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_drag"
	updateGridConfigHandler "github.com/m04kA/SMC-CalendarService/internal/api/handlers/update_grid_config"
	"github.com/m04kA/SMC-CalendarService/internal/api/middleware"
	"github.com/m04kA/SMC-CalendarService/internal/config"
	gridConfigRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/gridconfig"
	appointmentClient "github.com/m04kA/SMC-CalendarService/internal/integrations/appointmentservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/dragsession"
	gridConfigService "github.com/m04kA/SMC-CalendarService/internal/service/gridconfig"
	checkSlotUC "github.com/m04kA/SMC-CalendarService/internal/usecase/check_slot"
	getDayScheduleUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_day_schedule"
	getWeekOverviewUC "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_overview"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/logger"
	"github.com/m04kA/SMC-CalendarService/pkg/metrics"
	"github.com/m04kA/SMC-CalendarService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CalendarService/pkg/txmanager"
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

	log.Info("Starting SMC-CalendarService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента AppointmentService
	apptClient := appointmentClient.NewClient(
		cfg.AppointmentService.URL,
		time.Duration(cfg.AppointmentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AppointmentService=%s timeout=%ds)",
		cfg.AppointmentService.URL, cfg.AppointmentService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var configRepository *gridConfigRepo.Repository

	// Интерфейс для transaction manager (используется в сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		configRepository = gridConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		configRepository = gridConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := gridConfigService.NewService(configRepository, txMgr, log)

	dragManager := dragsession.NewManager(
		apptClient,
		configSvc,
		time.Duration(cfg.DragSession.TTL)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		dragManager.EnableMetrics(metricsCollector, cfg.Metrics.ServiceName)
	}

	// Janitor убирает брошенные drag-сессии
	stopJanitorCh := make(chan struct{})
	go dragManager.RunJanitor(time.Duration(cfg.DragSession.JanitorInterval)*time.Second, stopJanitorCh)
	log.Info("Drag session janitor started (ttl=%ds, interval=%ds)",
		cfg.DragSession.TTL, cfg.DragSession.JanitorInterval)

	// Инициализируем use cases
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(apptClient, configSvc, log)
	getWeekOverviewUseCase := getWeekOverviewUC.NewUseCase(apptClient, configSvc, log)
	checkSlotUseCase := checkSlotUC.NewUseCase(apptClient, configSvc, log)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	getWeekOverview := getWeekOverviewHandler.NewHandler(getWeekOverviewUseCase, log)
	checkSlot := checkSlotHandler.NewHandler(checkSlotUseCase, log)
	getGridConfig := getGridConfigHandler.NewHandler(configSvc, log)
	updateGridConfig := updateGridConfigHandler.NewHandler(configSvc, log)
	startDrag := startDragHandler.NewHandler(dragManager, log)
	updateDrag := updateDragHandler.NewHandler(dragManager, log)
	endDrag := endDragHandler.NewHandler(dragManager, log)
	cancelDrag := cancelDragHandler.NewHandler(dragManager, log)
	getDragState := getDragStateHandler.NewHandler(dragManager, log)
	dragStream := dragStreamHandler.NewHandler(dragManager, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Дневная раскладка сетки расписания
	api.HandleFunc("/companies/{companyId}/schedule",
		getDaySchedule.Handle).Methods(http.MethodGet)

	// Недельный обзор расписания
	api.HandleFunc("/companies/{companyId}/schedule/week",
		getWeekOverview.Handle).Methods(http.MethodGet)

	// Проверка доступности слота
	api.HandleFunc("/companies/{companyId}/schedule/check-slot",
		checkSlot.Handle).Methods(http.MethodGet)

	// Получение конфигурации сетки компании
	api.HandleFunc("/companies/{companyId}/grid-config",
		getGridConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Конфигурация сетки (для менеджеров) ---
	protected.HandleFunc("/companies/{companyId}/grid-config", updateGridConfig.Handle).Methods(http.MethodPut)

	// --- Drag-сессии переноса записей ---
	protected.HandleFunc("/companies/{companyId}/drag/start", startDrag.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/drag/position", updateDrag.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/companies/{companyId}/drag/end", endDrag.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/drag/cancel", cancelDrag.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/companies/{companyId}/drag", getDragState.Handle).Methods(http.MethodGet)

	// WebSocket поток drag-сессии
	protected.HandleFunc("/companies/{companyId}/drag/stream", dragStream.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем janitor drag-сессий
	close(stopJanitorCh)

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped")
}
