package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Поддерживаемые драйверы хранилища
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Export   ExportConfig
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port string `validate:"required,numeric"`
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver   string `validate:"oneof=postgres sqlite"`
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	Path     string `validate:"required_if=Driver sqlite"`
}

// LogConfig - настройки логирования
type LogConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// ExportConfig - настройки выгрузки CSV
type ExportConfig struct {
	BatchSize int `validate:"min=1"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// SQLiteDSN возвращает путь к файлу SQLite с включёнными внешними ключами
func (c *DatabaseConfig) SQLiteDSN() string {
	return c.Path + "?_foreign_keys=on&_busy_timeout=5000"
}

// SlogLevel переводит уровень логирования в slog.Level
func (c *LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load загружает конфигурацию: значения по умолчанию, затем файл из
// CONFIG_FILE (если задан), затем переменные окружения
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			Path:     v.GetString("DB_PATH"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		Export: ExportConfig{
			BatchSize: v.GetInt("EXPORT_BATCH_SIZE"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid configuration: %s", verrs.Error())
		}
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "employees")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_PATH", "employees.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("EXPORT_BATCH_SIZE", 500)
}
