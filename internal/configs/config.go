package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config хранит всю конфигурацию приложения.
type Config struct {
	Port    string
	AppName string

	Facebook     FacebookConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// FacebookConfig — учетные данные страницы и приложения Facebook.
// Поступают только из окружения процесса, никогда — из тел запросов.
type FacebookConfig struct {
	BaseURL     string
	PageID      string
	AccessToken string
	AppID       string
	AppSecret   string
}

type StdoutLogConfig struct {
	Level string // По умолчанию DEBUG
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string // По умолчанию INFO
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Рекомендуется использовать .env файл для локальной разработки.
func LoadConfig(envPath ...string) (*Config, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		// Не фатально: в контейнере переменные приходят из окружения напрямую.
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:    getEnv("PORT", "3000"),
		AppName: getEnv("APP_NAME", "facebook-publisher-service"),
	}

	cfg.Facebook = FacebookConfig{
		BaseURL:     getEnv("GRAPH_API_BASE_URL", "https://graph.facebook.com/v18.0"),
		PageID:      getEnv("FACEBOOK_PAGE_ID", ""),
		AccessToken: getEnv("FACEBOOK_ACCESS_TOKEN", ""),
		AppID:       getEnv("FACEBOOK_APP_ID", ""),
		AppSecret:   getEnv("FACEBOOK_APP_SECRET", ""),
	}
	if cfg.Facebook.PageID == "" || cfg.Facebook.AccessToken == "" {
		// Сервис стартует и без учетных данных: каждая публикация будет
		// единообразно завершаться ошибкой про отсутствующие credentials.
		log.Println("WARNING: FACEBOOK_PAGE_ID or FACEBOOK_ACCESS_TOKEN is not set. Publishing will fail.")
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnv("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// getEnv - вспомогательная функция для чтения переменных окружения с значением по умолчанию.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
