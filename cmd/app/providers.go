package main

import (
	"log/slog"
	"strings"

	"github.com/sparsha/skincare-ai/internal/domain/advisor"
	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
	"github.com/sparsha/skincare-ai/internal/infra/config"
	"github.com/sparsha/skincare-ai/internal/infra/llm/chatgpt"
	"github.com/sparsha/skincare-ai/internal/infra/vision/onnx"
	"github.com/sparsha/skincare-ai/internal/infra/weather/openweather"
)

func provideAdvisorConfig(cfg *config.Config) advisor.Config {
	return advisor.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Prompt:      cfg.Advisor.Prompt,
	}
}

// provideChatClient returns nil when no API key is configured; the advisor
// then serves fallback recommendations instead of failing at startup.
func provideChatClient(cfg *config.Config, logger *slog.Logger) advisor.ChatClient {
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("llm api key not set, ai recommendations disabled")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to create llm client, ai recommendations disabled", "error", err)
		return nil
	}
	return client
}

// provideClassifier returns nil when the checkpoint cannot be loaded; every
// detection then yields the default label. The cleanup releases the ONNX
// session on shutdown.
func provideClassifier(cfg *config.Config, logger *slog.Logger) (skintype.Classifier, func()) {
	classifier, err := onnx.NewClassifier(cfg.Vision.ModelPath)
	if err != nil {
		logger.Warn("skin model unavailable, using default label", "path", cfg.Vision.ModelPath, "error", err)
		return nil, func() {}
	}
	logger.Info("skin model loaded", "path", cfg.Vision.ModelPath)
	return classifier, func() {
		if err := classifier.Close(); err != nil {
			logger.Warn("failed to release skin model", "error", err)
		}
	}
}

// provideWeatherClient returns nil when no API key is configured; lookups
// then serve deterministic mock snapshots.
func provideWeatherClient(cfg *config.Config, logger *slog.Logger) weather.Client {
	if strings.TrimSpace(cfg.Weather.APIKey) == "" {
		logger.Warn("weather api key not set, serving mock weather data")
		return nil
	}
	return openweather.NewClient(cfg.Weather.APIKey, cfg.Weather.APIBaseURL)
}
