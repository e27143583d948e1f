package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// clearEnvOverrides blanks every variable applyEnvOverrides reads so tests
// are insulated from the ambient environment.
func clearEnvOverrides(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"CONFIG_PATH",
		"HTTP_ADDRESS",
		"HTTP_ALLOWED_ORIGINS",
		"HTTP_RATE_LIMIT_ENABLED",
		"HTTP_RATE_LIMIT_RPM",
		"HTTP_RATE_LIMIT_BURST",
		"OPENAI_API_KEY",
		"LLM_API_KEY",
		"LLM_BASE_URL",
		"LLM_MODEL",
		"LLM_TEMPERATURE",
		"OPENWEATHER_API_KEY",
		"WEATHER_API_BASE_URL",
		"SKIN_MODEL_PATH",
		"ADVISOR_PROMPT",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8000", cfg.HTTP.Address)
	require.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
	require.True(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Empty(t, cfg.LLM.APIKey)
	require.Empty(t, cfg.Weather.APIKey)
	require.Equal(t, "models/skin_type.onnx", cfg.Vision.ModelPath)
	require.NotEmpty(t, cfg.Advisor.Prompt)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  address: ":9000"
  rateLimit:
    enabled: false
llm:
  model: gpt-4o
  temperature: 0.2
vision:
  modelPath: /models/skin.onnx
`), 0o600))
	clearEnvOverrides(t)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.HTTP.Address)
	require.False(t, cfg.HTTP.RateLimit.Enabled)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
	require.Equal(t, float32(0.2), cfg.LLM.Temperature)
	require.Equal(t, "/models/skin.onnx", cfg.Vision.ModelPath)
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http:\n  address: \":9000\"\n"), 0o600))
	clearEnvOverrides(t)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("HTTP_ADDRESS", ":7000")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENWEATHER_API_KEY", "owm-test")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.HTTP.Address)
	require.Equal(t, "sk-test", cfg.LLM.APIKey)
	require.Equal(t, "owm-test", cfg.Weather.APIKey)
	require.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.HTTP.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	cfg := defaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.HTTP.Address = ""
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.LLM.Model = "  "
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.RequestsPerMinute = 0
	require.Error(t, cfg.Validate())

	cfg = defaultConfig()
	cfg.HTTP.RateLimit.Enabled = false
	cfg.HTTP.RateLimit.RequestsPerMinute = 0
	require.NoError(t, cfg.Validate())
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [broken"), 0o600))
	clearEnvOverrides(t)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	require.Error(t, err)
}
