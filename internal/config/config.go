package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Переменные окружения, перекрывающие значения из файла
const (
	EnvCalcomAPIKey = "CALCOM_API_KEY"
	EnvUserEmail    = "USER_EMAIL"
	EnvUserTimezone = "USER_TIMEZONE"
)

var (
	ErrMissingAPIKey   = errors.New("config: calendar api key is not set")
	ErrMissingEmail    = errors.New("config: assistant user email is not set")
	ErrInvalidTimezone = errors.New("config: invalid timezone")
	ErrInvalidValue    = errors.New("config: invalid value")
)

type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Assistant AssistantConfig `toml:"assistant"`
	Database  DatabaseConfig  `toml:"database"`
	Sessions  SessionsConfig  `toml:"sessions"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig настройки клиента Cal.com
type CalendarConfig struct {
	BaseURL        string  `toml:"base_url"`
	APIKey         string  `toml:"api_key"`
	Timeout        int     `toml:"timeout"`         // секунды
	RateLimit      float64 `toml:"rate_limit"`      // запросов в секунду, 0 = без ограничения
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// EventTypeAlias сопоставление названия типа встречи и его ID в календаре
type EventTypeAlias struct {
	Name string `toml:"name"`
	ID   int64  `toml:"id"`
}

type AssistantConfig struct {
	UserEmail          string           `toml:"user_email"`
	Timezone           string           `toml:"timezone"`
	DefaultEventTypeID int64            `toml:"default_event_type_id"`
	EventTypes         []EventTypeAlias `toml:"event_types"`
}

// SessionsConfig ограничения HTTP сессий диалога
type SessionsConfig struct {
	IdleTTL       int `toml:"idle_ttl"`       // секунды без сообщений до закрытия
	SweepInterval int `toml:"sweep_interval"` // секунды
	MaxOpen       int `toml:"max_open"`
}

// DatabaseConfig журнал переносов встреч (опционально)
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
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

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и переменные окружения.
// Отсутствующий файл не ошибка: сервис можно запустить только на переменных окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "scheduling-assistant",
		},
		Calendar: CalendarConfig{
			BaseURL:        "https://api.cal.com/v1",
			Timeout:        10,
			RateLimit:      5,
			RateLimitBurst: 5,
		},
		Assistant: AssistantConfig{
			Timezone: "UTC",
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
		Sessions: SessionsConfig{
			IdleTTL:       1800,
			SweepInterval: 60,
			MaxOpen:       1000,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvCalcomAPIKey); v != "" {
		c.Calendar.APIKey = v
	}
	if v := os.Getenv(EnvUserEmail); v != "" {
		c.Assistant.UserEmail = v
	}
	if v := os.Getenv(EnvUserTimezone); v != "" {
		c.Assistant.Timezone = v
	}
}

// applyDefaults восстанавливает значения, обнуленные в файле
func (c *Config) applyDefaults() {
	def := Default()
	if c.Calendar.BaseURL == "" {
		c.Calendar.BaseURL = def.Calendar.BaseURL
	}
	c.Calendar.BaseURL = strings.TrimRight(c.Calendar.BaseURL, "/")
	if c.Calendar.Timeout <= 0 {
		c.Calendar.Timeout = def.Calendar.Timeout
	}
	if c.Calendar.RateLimitBurst <= 0 {
		c.Calendar.RateLimitBurst = 1
	}
	if c.Assistant.Timezone == "" {
		c.Assistant.Timezone = def.Assistant.Timezone
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = def.Metrics.ServiceName
	}
	if c.Sessions.IdleTTL <= 0 {
		c.Sessions.IdleTTL = def.Sessions.IdleTTL
	}
	if c.Sessions.SweepInterval <= 0 {
		c.Sessions.SweepInterval = def.Sessions.SweepInterval
	}
	if c.Assistant.DefaultEventTypeID == 0 && len(c.Assistant.EventTypes) > 0 {
		c.Assistant.DefaultEventTypeID = c.Assistant.EventTypes[0].ID
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Calendar.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Assistant.UserEmail == "" {
		return ErrMissingEmail
	}
	if _, err := time.LoadLocation(c.Assistant.Timezone); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidTimezone, c.Assistant.Timezone, err)
	}
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidValue, c.Server.HTTPPort)
	}
	if c.Calendar.RateLimit < 0 {
		return fmt.Errorf("%w: calendar.rate_limit=%v", ErrInvalidValue, c.Calendar.RateLimit)
	}
	if c.Sessions.MaxOpen < 0 {
		return fmt.Errorf("%w: sessions.max_open=%d", ErrInvalidValue, c.Sessions.MaxOpen)
	}
	for _, et := range c.Assistant.EventTypes {
		if strings.TrimSpace(et.Name) == "" || et.ID <= 0 {
			return fmt.Errorf("%w: assistant.event_types entry %q/%d", ErrInvalidValue, et.Name, et.ID)
		}
	}
	return nil
}

// Location часовой пояс пользователя. Валидность проверена в Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Assistant.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CalendarTimeout таймаут исходящих запросов к календарю
func (c *Config) CalendarTimeout() time.Duration {
	return time.Duration(c.Calendar.Timeout) * time.Second
}

// SessionIdleTTL время жизни сессии без сообщений
func (c *Config) SessionIdleTTL() time.Duration {
	return time.Duration(c.Sessions.IdleTTL) * time.Second
}

// SessionSweepInterval период очистки простаивающих сессий
func (c *Config) SessionSweepInterval() time.Duration {
	return time.Duration(c.Sessions.SweepInterval) * time.Second
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}
