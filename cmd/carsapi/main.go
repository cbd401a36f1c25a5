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
	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-CarManager/internal/api/middleware"
	"github.com/m04kA/SMC-CarManager/internal/apiserver"
	"github.com/m04kA/SMC-CarManager/internal/config"
	carRepo "github.com/m04kA/SMC-CarManager/internal/infra/storage/car"
	"github.com/m04kA/SMC-CarManager/pkg/logger"
	"github.com/m04kA/SMC-CarManager/pkg/metrics"
)

func main() {
	flagSet := pflag.NewFlagSet("carsapi", pflag.ContinueOnError)
	configPath := flagSet.String("config", "config.toml", "path to TOML config file")
	port := flagSet.Int("port", 7081, "HTTP port of the Cars API")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Failed to parse flags: %v\n", err)
		os.Exit(2)
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-CarManager cars api (storage=%s)...", cfg.Storage.Driver)

	// Инициализируем хранилище
	var repo apiserver.CarRepository
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
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

		if _, err := db.Exec(carRepo.Schema); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}

		repo = carRepo.NewRepository(db)
	default:
		repo = carRepo.NewMemoryRepository()
		log.Info("Using in-memory storage, data is lost on restart")
	}

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	if cfg.Metrics.Enabled {
		metricsCollector := metrics.New(cfg.Metrics.ServiceName + "_carsapi")
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	apiserver.NewHandler(repo, log).Register(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
