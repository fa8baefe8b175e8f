package configs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	// Пустой .env: все значения берутся по умолчанию.
	path := writeEnvFile(t, "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.AppName != "facebook-publisher-service" {
		t.Errorf("unexpected default app name: %q", cfg.AppName)
	}
	if cfg.Facebook.BaseURL != "https://graph.facebook.com/v18.0" {
		t.Errorf("unexpected default Graph API base url: %q", cfg.Facebook.BaseURL)
	}
	if cfg.FluentBit.Enabled {
		t.Error("fluent bit must be disabled by default")
	}
	if cfg.StdoutLogger.Level != "debug" {
		t.Errorf("unexpected default stdout log level: %q", cfg.StdoutLogger.Level)
	}
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := writeEnvFile(t, `PORT=8085
FACEBOOK_PAGE_ID=711339472071578
FACEBOOK_ACCESS_TOKEN=test-token
GRAPH_API_BASE_URL=https://graph.facebook.com/v19.0
STDOUT_LOG_LEVEL=warn
`)
	t.Cleanup(func() {
		// godotenv.Load пишет в окружение процесса
		for _, key := range []string{"PORT", "FACEBOOK_PAGE_ID", "FACEBOOK_ACCESS_TOKEN", "GRAPH_API_BASE_URL", "STDOUT_LOG_LEVEL"} {
			os.Unsetenv(key)
		}
	})

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8085" {
		t.Errorf("expected port from file, got %q", cfg.Port)
	}
	if cfg.Facebook.PageID != "711339472071578" || cfg.Facebook.AccessToken != "test-token" {
		t.Errorf("unexpected facebook credentials: %+v", cfg.Facebook)
	}
	if cfg.Facebook.BaseURL != "https://graph.facebook.com/v19.0" {
		t.Errorf("unexpected Graph API base url: %q", cfg.Facebook.BaseURL)
	}
	if cfg.StdoutLogger.Level != "warn" {
		t.Errorf("unexpected stdout log level: %q", cfg.StdoutLogger.Level)
	}
}

func TestLoadConfigStartsWithoutCredentials(t *testing.T) {
	path := writeEnvFile(t, "")

	// Отсутствие учетных данных не должно валить загрузку конфигурации.
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Facebook.PageID != "" || cfg.Facebook.AccessToken != "" {
		t.Errorf("expected empty credentials, got %+v", cfg.Facebook)
	}
}

func TestLoadConfigFluentBitRequiresHost(t *testing.T) {
	path := writeEnvFile(t, "FLUENTBIT_ENABLED=true\n")
	t.Cleanup(func() { os.Unsetenv("FLUENTBIT_ENABLED") })

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.FluentBit.Enabled {
		t.Error("fluent bit must be disabled when host is missing")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT_VAR", "42")
	if got := getEnvAsInt("TEST_INT_VAR", 7); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}

	t.Setenv("TEST_INT_VAR", "not-a-number")
	if got := getEnvAsInt("TEST_INT_VAR", 7); got != 7 {
		t.Errorf("expected fallback 7, got %d", got)
	}

	if got := getEnvAsInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("expected fallback 7 for missing variable, got %d", got)
	}
}
