package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Поддерживаемые драйверы БД
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config содержит настройки приложения
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	CORS     CORSConfig
}

// AppConfig - сведения о приложении для /version
type AppConfig struct {
	Name    string
	Env     string
	Version string
}

// ServerConfig - настройки HTTP сервера
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig - настройки подключения к БД
type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnectAttempts int
	LogLevel        string
	RunMigrations   bool
}

// LogConfig - настройки логгера
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig - разрешённые источники для браузерного фронтенда
type CORSConfig struct {
	AllowedOrigins []string
}

// DSN возвращает строку подключения для выбранного драйвера
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Load загружает конфигурацию из переменных окружения и файла .env, если он есть
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "company-records-api"),
			Env:     getEnv("APP_ENV", "development"),
			Version: getEnv("APP_VERSION", "0.1.0"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8500"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverPostgres),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", getEnv("DB_PASS", "postgres")),
			DBName:   getEnv("DB_NAME", "company"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			Path:     getEnv("DB_PATH", "company.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{
				"http://127.0.0.1:5500",
				"http://localhost:5500",
			}),
		},
	}

	var err error
	if cfg.Server.ReadTimeout, err = getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.WriteTimeout, err = getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.IdleTimeout, err = getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.Server.ShutdownTimeout, err = getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpenConns, err = getEnvAsInt("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if cfg.Database.MaxIdleConns, err = getEnvAsInt("DB_MAX_IDLE_CONNS", 10); err != nil {
		return nil, err
	}
	if cfg.Database.ConnectAttempts, err = getEnvAsInt("DB_CONNECT_ATTEMPTS", 30); err != nil {
		return nil, err
	}
	if cfg.Database.RunMigrations, err = getEnvAsBool("DB_RUN_MIGRATIONS", true); err != nil {
		return nil, err
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("invalid DB_DRIVER %q: use %q or %q", cfg.Database.Driver, DriverPostgres, DriverSQLite)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
