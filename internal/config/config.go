package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config корневая конфигурация сервиса
type Config struct {
	Server              ServerConfig   `toml:"server"`
	Logs                LogsConfig     `toml:"logs"`
	Metrics             MetricsConfig  `toml:"metrics"`
	CheckoutService     EndpointConfig `toml:"checkout_service"`
	CancellationService EndpointConfig `toml:"cancellation_service"`
	Drafts              DraftsConfig   `toml:"drafts"`
	Catalog             *CatalogConfig `toml:"catalog"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// EndpointConfig адрес и таймаут внешнего HTTP-сервиса
type EndpointConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DraftsConfig настройки хранилища черновиков
type DraftsConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// CatalogConfig опциональное переопределение встроенного каталога
type CatalogConfig struct {
	Services  []CatalogServiceConfig `toml:"services"`
	TimeSlots []string               `toml:"time_slots"`
}

// CatalogServiceConfig описание услуги в каталоге
type CatalogServiceConfig struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Price       int    `toml:"price"`
	Duration    string `toml:"duration"`
	Description string `toml:"description"`
}

// Load читает конфигурацию из TOML-файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "configurator-service",
		},
		CheckoutService: EndpointConfig{
			Timeout: 15,
		},
		CancellationService: EndpointConfig{
			Timeout: 15,
		},
		Drafts: DraftsConfig{
			TTLMinutes:             60,
			CleanupIntervalMinutes: 5,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}
	if c.CheckoutService.URL == "" {
		return fmt.Errorf("config: checkout_service.url is required")
	}
	if c.CancellationService.URL == "" {
		return fmt.Errorf("config: cancellation_service.url is required")
	}
	if c.CheckoutService.Timeout <= 0 {
		return fmt.Errorf("config: checkout_service.timeout must be positive")
	}
	if c.CancellationService.Timeout <= 0 {
		return fmt.Errorf("config: cancellation_service.timeout must be positive")
	}
	if c.Drafts.TTLMinutes <= 0 {
		return fmt.Errorf("config: drafts.ttl_minutes must be positive")
	}
	if c.Drafts.CleanupIntervalMinutes <= 0 {
		return fmt.Errorf("config: drafts.cleanup_interval_minutes must be positive")
	}
	return nil
}
