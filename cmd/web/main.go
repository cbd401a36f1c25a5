package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-CarManager/internal/api"
	"github.com/m04kA/SMC-CarManager/internal/api/views"
	"github.com/m04kA/SMC-CarManager/internal/config"
	"github.com/m04kA/SMC-CarManager/internal/domain"
	"github.com/m04kA/SMC-CarManager/internal/integrations/carsapi"
	carsService "github.com/m04kA/SMC-CarManager/internal/service/cars"
	saveCarUC "github.com/m04kA/SMC-CarManager/internal/usecase/save_car"
	"github.com/m04kA/SMC-CarManager/pkg/logger"
	"github.com/m04kA/SMC-CarManager/pkg/metrics"
)

func main() {
	flagSet := pflag.NewFlagSet("web", pflag.ContinueOnError)
	configPath := flagSet.String("config", "config.toml", "path to TOML config file")
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

	log.Info("Starting SMC-CarManager web...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента Cars API
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.CarsAPI.InsecureSkipVerify {
		transport = carsapi.InsecureTransport()
		log.Warn("TLS certificate verification for Cars API is disabled")
	}
	if metricsCollector != nil {
		transport = metricsCollector.InstrumentTransport(transport)
	}

	carsClient := carsapi.NewClient(
		cfg.CarsAPI.URL,
		time.Duration(cfg.CarsAPI.Timeout)*time.Second,
		log,
		carsapi.WithTransport(transport),
	)
	log.Info("Cars API client initialized (url=%s, timeout=%ds)", cfg.CarsAPI.URL, cfg.CarsAPI.Timeout)

	// Кодек перечислений с подписью по умолчанию из конфигурации
	codec := domain.Codec.WithFallback(cfg.UI.UnknownLabel)

	// Инициализируем сервисы и use cases
	carSvc := carsService.NewService(carsClient, codec, log)
	saveCarUseCase := saveCarUC.NewUseCase(carsClient, codec, log)

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("Failed to parse templates: %v", err)
	}

	r := api.NewRouter(api.Dependencies{
		CarService:  carSvc,
		SaveCar:     saveCarUseCase,
		Codec:       codec,
		Renderer:    renderer,
		Logger:      log,
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
	})

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
