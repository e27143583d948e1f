package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsha/skincare-ai/internal/infra/config"
)

func TestProvideClassifierMissingModel(t *testing.T) {
	cfg := &config.Config{Vision: config.VisionConfig{ModelPath: filepath.Join(t.TempDir(), "missing.onnx")}}

	classifier, cleanup := provideClassifier(cfg, testLogger())
	require.Nil(t, classifier)
	require.NotNil(t, cleanup)
	cleanup()
}

func TestProvideChatClientWithoutKey(t *testing.T) {
	require.Nil(t, provideChatClient(&config.Config{}, testLogger()))
}

func TestProvideWeatherClientWithoutKey(t *testing.T) {
	require.Nil(t, provideWeatherClient(&config.Config{}, testLogger()))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
