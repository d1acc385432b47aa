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

	cancelAppointmentHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_appointment"
	getAvailableDaysHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_customer_appointments"
	getProfessionalAppointmentsHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_professional_appointments"
	getScheduleHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/get_schedule"
	updateScheduleHandler "github.com/levkurapov/salon-booking-service/internal/api/handlers/update_schedule"
	"github.com/levkurapov/salon-booking-service/internal/api/middleware"
	"github.com/levkurapov/salon-booking-service/internal/calendar"
	"github.com/levkurapov/salon-booking-service/internal/config"
	appointmentRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/catalog"
	scheduleRepo "github.com/levkurapov/salon-booking-service/internal/infra/storage/schedule"
	appointmentsService "github.com/levkurapov/salon-booking-service/internal/service/appointments"
	scheduleService "github.com/levkurapov/salon-booking-service/internal/service/schedule"
	createAppointmentUC "github.com/levkurapov/salon-booking-service/internal/usecase/create_appointment"
	getAvailableDaysUC "github.com/levkurapov/salon-booking-service/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/levkurapov/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/levkurapov/salon-booking-service/pkg/dbmetrics"
	"github.com/levkurapov/salon-booking-service/pkg/logger"
	"github.com/levkurapov/salon-booking-service/pkg/metrics"
	"github.com/levkurapov/salon-booking-service/pkg/redislock"
	"github.com/levkurapov/salon-booking-service/pkg/simpletxmanager"
	"github.com/levkurapov/salon-booking-service/pkg/txmanager"
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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Календарь нерабочих дат из конфигурации
	holidays, err := calendar.NewHolidayCalendar(cfg.Holidays.Dates)
	if err != nil {
		log.Fatal("Failed to parse holiday calendar: %v", err)
	}
	log.Info("Holiday calendar loaded: %d dates", holidays.Len())

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

	// Распределённая блокировка слота (опционально)
	var slotLocker createAppointmentUC.SlotLocker
	if cfg.Redis.Enabled {
		locker, err := redislock.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to Redis: %v", err)
		}
		defer locker.Close()
		slotLocker = locker
		log.Info("Redis slot lock enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.LockTTLSeconds)
	}
	lockTTL := time.Duration(cfg.Redis.LockTTLSeconds) * time.Second

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
		catalogRepository     *catalogRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, catalogRepository, txMgr, log)

	// Инициализируем use cases
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		holidays,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		holidays,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		txMgr,
		slotLocker,
		lockTTL,
		holidays,
		log,
	)

	// Инициализируем handlers
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getProfessionalAppointments := getProfessionalAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

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

	// API prefix, весь API мультитенантный - X-Tenant-ID обязателен
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Tenant)

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные дни месяца для записи к мастеру
	api.HandleFunc("/professionals/{professionalId}/available-days",
		getAvailableDays.Handle).Methods(http.MethodGet)

	// Свободные времена начала на конкретный день
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Недельное расписание мастера
	api.HandleFunc("/professionals/{professionalId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена записи
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// История записей клиента
	protected.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном ---
	// Календарь мастера
	protected.HandleFunc("/professionals/{professionalId}/appointments",
		getProfessionalAppointments.Handle).Methods(http.MethodGet)

	// Замена недельного расписания мастера
	protected.HandleFunc("/professionals/{professionalId}/schedule",
		updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
