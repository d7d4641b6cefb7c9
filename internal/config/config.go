package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию сервера генерации сказок.
type Config struct {
	Env        string `envconfig:"ENV" default:"development"`
	HTTPPort   string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"json"`
	CORSOrigin string `envconfig:"CORS_ALLOWED_ORIGINS" default:""`

	// Хранилище: postgres или memory (для локальной разработки и тестов)
	Storage string `envconfig:"STORAGE" default:"postgres"`

	// Настройки AI провайдера. Провайдер выбирается конфигурацией,
	// логика сборки промптов от выбора не зависит.
	AIProvider   string        `envconfig:"AI_PROVIDER" default:"openai"` // openai | ollama
	AIBaseURL    string        `envconfig:"AI_BASE_URL" default:""`
	AIModel      string        `envconfig:"AI_MODEL" default:"gpt-4o"`
	AIImageModel string        `envconfig:"AI_IMAGE_MODEL" default:"dall-e-3"`
	AITimeout    time.Duration `envconfig:"AI_TIMEOUT" default:"120s"`
	// Секретное поле: сначала переменная окружения, затем docker secret
	AIAPIKey string

	// Настройки PostgreSQL
	DBHost        string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string        `envconfig:"DB_PORT" default:"5432"`
	DBUser        string        `envconfig:"DB_USER" default:"postgres"`
	DBName        string        `envconfig:"DB_NAME" default:"bedtime_db"`
	DBSSLMode     string        `envconfig:"DB_SSL_MODE" default:"disable"`
	DBMaxConns    int           `envconfig:"DB_MAX_CONNECTIONS" default:"10"`
	DBIdleTimeout time.Duration `envconfig:"DB_MAX_IDLE_MINUTES" default:"5m"`
	// Секретное поле: переменная окружения или docker secret
	DBPassword string
}

// GetDSN возвращает строку подключения (DSN) для PostgreSQL.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// MaskedDSN возвращает DSN с замаскированным паролем для логирования.
func (c *Config) MaskedDSN() string {
	dsn := c.GetDSN()
	parts := strings.Split(dsn, "@")
	if len(parts) != 2 {
		return "[invalid dsn format]"
	}
	userInfo := strings.Split(parts[0], ":")
	if len(userInfo) >= 2 {
		userInfo[len(userInfo)-1] = "********"
	}
	return strings.Join(userInfo, ":") + "@" + parts[1]
}

// GetAllowedOrigins возвращает список разрешенных CORS origin'ов.
func (c *Config) GetAllowedOrigins() []string {
	if strings.TrimSpace(c.CORSOrigin) == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(c.CORSOrigin, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// LoadConfig загружает конфигурацию из переменных окружения и секретов.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	// Секреты: переменная окружения имеет приоритет, иначе docker secret.
	cfg.AIAPIKey = loadSecret("AI_API_KEY", "ai_api_key")
	cfg.DBPassword = loadSecret("DB_PASSWORD", "db_password")

	// Ключ обязателен только для облачного провайдера; ollama работает локально.
	if cfg.AIProvider == "openai" && cfg.AIAPIKey == "" {
		return nil, fmt.Errorf("AI_API_KEY не задан (ни в окружении, ни в /run/secrets/ai_api_key)")
	}

	return &cfg, nil
}

// loadSecret читает значение из переменной окружения, а при ее отсутствии —
// из файла в стандартном пути Docker Secrets.
func loadSecret(envName, secretName string) string {
	if v := os.Getenv(envName); v != "" {
		return v
	}
	secretBytes, err := os.ReadFile(fmt.Sprintf("/run/secrets/%s", secretName))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(secretBytes))
}
