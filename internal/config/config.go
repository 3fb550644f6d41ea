package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig             `toml:"server"`
	Database           DatabaseConfig           `toml:"database"`
	Logs               LogsConfig               `toml:"logs"`
	Metrics            MetricsConfig            `toml:"metrics"`
	AppointmentService AppointmentServiceConfig `toml:"appointment_service"`
	DragSession        DragSessionConfig        `toml:"drag_session"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort     int `toml:"http_port"`
	ReadTimeout  int `toml:"read_timeout"`  // секунды
	WriteTimeout int `toml:"write_timeout"` // секунды
	IdleTimeout  int `toml:"idle_timeout"`  // секунды
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

// DSN возвращает строку подключения к базе данных
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AppointmentServiceConfig настройки клиента AppointmentService
type AppointmentServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// DragSessionConfig настройки drag-сессий
type DragSessionConfig struct {
	TTL             int `toml:"ttl"`              // секунды, время жизни брошенной сессии
	JanitorInterval int `toml:"janitor_interval"` // секунды, период очистки
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.AppointmentService.URL == "" {
		return fmt.Errorf("appointment_service.url is required")
	}
	if c.DragSession.TTL <= 0 {
		return fmt.Errorf("drag_session.ttl must be positive")
	}
	if c.DragSession.JanitorInterval <= 0 {
		return fmt.Errorf("drag_session.janitor_interval must be positive")
	}
	return nil
}
