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
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	addItineraryDayHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/add_itinerary_day"
	addReservationHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/add_reservation"
	commitRegenerationHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/commit_regeneration"
	getBookingStatusHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/get_booking_status"
	listBookingsStatusHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/list_bookings_status"
	listItineraryDaysHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/list_itinerary_days"
	listReservationsHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/list_reservations"
	proposeRegenerationHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/propose_regeneration"
	reorderItineraryHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/reorder_itinerary"
	updateItineraryDayHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/update_itinerary_day"
	updateReservationHandler "github.com/m04kA/SMC-TourBackoffice/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-TourBackoffice/internal/api/middleware"
	"github.com/m04kA/SMC-TourBackoffice/internal/config"
	proposalStore "github.com/m04kA/SMC-TourBackoffice/internal/infra/cache/proposal"
	"github.com/m04kA/SMC-TourBackoffice/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/booking"
	flightRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/flight"
	itineraryRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/itinerary"
	reservationRepo "github.com/m04kA/SMC-TourBackoffice/internal/infra/storage/reservation"
	itineraryService "github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary"
	reservationsService "github.com/m04kA/SMC-TourBackoffice/internal/service/reservations"
	commitRegenerationUC "github.com/m04kA/SMC-TourBackoffice/internal/usecase/commit_regeneration"
	getBookingStatusUC "github.com/m04kA/SMC-TourBackoffice/internal/usecase/get_booking_status"
	listBookingsStatusUC "github.com/m04kA/SMC-TourBackoffice/internal/usecase/list_bookings_status"
	proposeRegenerationUC "github.com/m04kA/SMC-TourBackoffice/internal/usecase/propose_regeneration"
	reorderItineraryUC "github.com/m04kA/SMC-TourBackoffice/internal/usecase/reorder_itinerary"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/logger"
	"github.com/m04kA/SMC-TourBackoffice/pkg/metrics"
	"github.com/m04kA/SMC-TourBackoffice/pkg/txmanager"
)

// EventPublisher публикатор событий с освобождением ресурсов
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
	Close() error
}

func main() {
	// Загружаем конфигурацию (.env, CONFIG_PATH или config.toml)
	cfg, err := config.Load("")
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

	log.Info("Starting SMC-TourBackoffice...")

	// Инициализируем метрики (если включены).
	// Методы *metrics.Metrics безопасны для nil, поэтому use cases получают коллектор всегда.
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.Collector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	// Обёртка нужна всегда: через неё txmanager передает транзакцию репозиториям
	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis: хранилище предложений перегенерации
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		cancelPing()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	cancelPing()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	proposalTTL := time.Duration(cfg.Regeneration.ProposalTTLSeconds) * time.Second
	// Ключ живет дольше предложения, чтобы отличать "истекло" (410) от "не найдено" (404)
	proposals := proposalStore.NewStore(redisClient, cfg.Redis.KeyPrefix, proposalTTL)

	// Kafka: события для слоя синхронизации
	var publisher EventPublisher = events.NopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic))
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	itineraryRepository := itineraryRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	flightRepository := flightRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		bookingRepository,
		reservationRepository,
		txMgr,
		publisher,
		log,
	)
	itinerarySvc := itineraryService.NewService(
		bookingRepository,
		itineraryRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	proposeRegenerationUseCase := proposeRegenerationUC.NewUseCase(
		bookingRepository,
		itineraryRepository,
		reservationRepository,
		proposals,
		metricsCollector,
		proposalTTL,
		log,
	)

	commitRegenerationUseCase := commitRegenerationUC.NewUseCase(
		proposals,
		bookingRepository,
		reservationRepository,
		txMgr,
		publisher,
		metricsCollector,
		log,
	)

	getBookingStatusUseCase := getBookingStatusUC.NewUseCase(
		bookingRepository,
		reservationRepository,
		flightRepository,
		metricsCollector,
		log,
	)

	listBookingsStatusUseCase := listBookingsStatusUC.NewUseCase(
		bookingRepository,
		reservationRepository,
		flightRepository,
		metricsCollector,
		cfg.Regeneration.StatusListWindowDays,
		log,
	)

	reorderItineraryUseCase := reorderItineraryUC.NewUseCase(
		bookingRepository,
		itineraryRepository,
		proposeRegenerationUseCase,
		txMgr,
		publisher,
		log,
	)

	// Инициализируем handlers
	proposeRegeneration := proposeRegenerationHandler.NewHandler(proposeRegenerationUseCase, log)
	commitRegeneration := commitRegenerationHandler.NewHandler(commitRegenerationUseCase, log)
	getBookingStatus := getBookingStatusHandler.NewHandler(getBookingStatusUseCase, log)
	listBookingsStatus := listBookingsStatusHandler.NewHandler(listBookingsStatusUseCase, log)
	reorderItinerary := reorderItineraryHandler.NewHandler(reorderItineraryUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	addReservation := addReservationHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationsSvc, log)
	listItineraryDays := listItineraryDaysHandler.NewHandler(itinerarySvc, log)
	addItineraryDay := addItineraryDayHandler.NewHandler(itinerarySvc, log)
	updateItineraryDay := updateItineraryDayHandler.NewHandler(itinerarySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Сводная таблица (регистрируется раньше /bookings/{bookingId}/...)
	api.HandleFunc("/bookings/status", listBookingsStatus.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/status", getBookingStatus.Handle).Methods(http.MethodGet)

	// Перегенерация размещений: предложение -> подтверждение
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/reservations/proposals",
		proposeRegeneration.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/reservations/proposals/{proposalId}/commit",
		commitRegeneration.Handle).Methods(http.MethodPost)

	// Ручное ведение размещений
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/reservations", listReservations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/reservations", addReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}", updateReservation.Handle).Methods(http.MethodPut)

	// Маршрут
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/itinerary/days", listItineraryDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/itinerary/days", addItineraryDay.Handle).Methods(http.MethodPost)
	api.HandleFunc("/itinerary/days/{dayId:[0-9]+}", updateItineraryDay.Handle).Methods(http.MethodPut)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}/itinerary/order", reorderItinerary.Handle).Methods(http.MethodPut)

	// CORS для back-office UI
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Error("Failed to close event publisher: %v", err)
	}

	log.Info("Server stopped gracefully")
}
