package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	External ExternalConfig
	Theme    ThemeConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig содержит настройки сервера
type ServerConfig struct {
	Host         string
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig содержит настройки базы данных
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// ExternalConfig содержит настройки API курсов валют.
// Timeout == 0 означает отсутствие таймаута.
type ExternalConfig struct {
	APIKey       string
	BaseURL      string
	BaseCurrency string
	Timeout      time.Duration
}

// Хранилища темы
const (
	ThemeStoreFile     = "file"
	ThemeStorePostgres = "postgres"
	ThemeStoreMemory   = "memory"
)

// ThemeConfig содержит настройки хранения темы оформления
type ThemeConfig struct {
	Store    string
	FilePath string
}

// LoggingConfig содержит настройки логирования
type LoggingConfig struct {
	Level  string
	Format string
}

// AppConfig содержит общие настройки приложения
type AppConfig struct {
	ShutdownTimeout time.Duration
}

// Load загружает конфигурацию из переменных окружения
// Сначала пытается загрузить .env файл, затем использует системные env vars
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using system environment variables: %v", err)
	}
	return FromEnv()
}

// FromEnv собирает конфигурацию только из текущего окружения
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "localhost"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "currency_converter"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		External: ExternalConfig{
			APIKey:       getEnv("EXCHANGE_API_KEY", ""),
			BaseURL:      strings.TrimRight(getEnv("EXCHANGE_API_URL", "https://v6.exchangerate-api.com/v6"), "/"),
			BaseCurrency: strings.ToUpper(getEnv("EXCHANGE_BASE_CURRENCY", "USD")),
			Timeout:      getDurationEnv("EXCHANGE_API_TIMEOUT", 0),
		},
		Theme: ThemeConfig{
			Store:    strings.ToLower(getEnv("THEME_STORE", ThemeStoreFile)),
			FilePath: getEnv("THEME_FILE", ".theme.json"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		App: AppConfig{
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
	}
}

// Addr возвращает адрес для http.Server
func (s ServerConfig) Addr() string {
	return s.Host + ":" + s.Port
}

// getEnv получает значение переменной окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv получает значение переменной окружения как duration или возвращает значение по умолчанию
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
