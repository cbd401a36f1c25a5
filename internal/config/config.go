package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не проходит проверку
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	CarsAPI  CarsAPIConfig  `toml:"cars_api"`
	UI       UIConfig       `toml:"ui"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CarsAPIConfig настройки клиента Cars API
type CarsAPIConfig struct {
	URL                string `toml:"url"`      // Базовый адрес, например https://localhost:7081
	Timeout            int    `toml:"timeout"`  // секунды
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
}

// UIConfig настройки отображения
type UIConfig struct {
	UnknownLabel string `toml:"unknown_label"`
}

// StorageConfig выбор хранилища для заглушки Cars API: "postgres" или "memory"
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// Драйверы хранилища
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "car_manager",
		},
		CarsAPI: CarsAPIConfig{
			URL:     "https://localhost:7081",
			Timeout: 10,
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// Load загружает конфигурацию из TOML файла поверх значений по умолчанию,
// затем применяет переменные окружения (включая .env, если он есть).
// Отсутствующий файл не ошибка: используются значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
		}
	}

	// .env не обязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет значения из переменных окружения
func (c *Config) applyEnv() error {
	if v := os.Getenv("CARS_API_URL"); v != "" {
		c.CarsAPI.URL = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT must be a number: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logs.Level = v
	}
	return nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: server.shutdown_timeout must be positive", ErrInvalidConfig)
	}
	if c.CarsAPI.URL == "" {
		return fmt.Errorf("%w: cars_api.url is required", ErrInvalidConfig)
	}
	if c.CarsAPI.Timeout <= 0 {
		return fmt.Errorf("%w: cars_api.timeout must be positive", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("%w: storage.driver must be %q or %q", ErrInvalidConfig, StorageDriverMemory, StorageDriverPostgres)
	}
	return nil
}
