package weather

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strings"
)

const mockNote = "Mock data - configure OPENWEATHER_API_KEY for real data"

var mockConditions = []string{"Clear", "Clouds", "Partly Cloudy", "Sunny"}

// Service exposes weather lookup for a free form location string.
type Service interface {
	Lookup(ctx context.Context, location string) Snapshot
	Configured() bool
}

// Client fetches current weather from the upstream provider.
type Client interface {
	Current(ctx context.Context, location string) (Snapshot, error)
}

type service struct {
	client Client
	logger *slog.Logger
}

// NewService wires up the weather lookup domain. A nil client means no API
// key is configured; every lookup then returns a mock snapshot.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{client: client, logger: logger.With("component", "weather.service")}
}

// Lookup never fails: any upstream problem degrades to a deterministic mock
// snapshot for the location so the analysis pipeline keeps going.
func (s *service) Lookup(ctx context.Context, location string) Snapshot {
	location = strings.TrimSpace(location)
	if s.client == nil {
		s.logger.Info("weather api not configured, using mock data", "location", location)
		return MockSnapshot(location)
	}

	snapshot, err := s.client.Current(ctx, location)
	if err != nil {
		s.logger.Warn("weather lookup failed, using mock data", "location", location, "error", err)
		return MockSnapshot(location)
	}
	s.logger.Info("weather fetched", "location", location, "temperature", snapshot.Temperature, "condition", snapshot.Condition)
	return snapshot
}

func (s *service) Configured() bool {
	return s.client != nil
}

// MockSnapshot derives stable pseudo weather from the location name so that
// different locations visibly produce different recommendations.
func MockSnapshot(location string) Snapshot {
	h := locationHash(location)
	return Snapshot{
		Temperature: float64(20 + h%15),
		Humidity:    50 + h%30,
		UVIndex:     3 + h%5,
		Condition:   mockConditions[h%len(mockConditions)],
		Location:    location,
		Note:        mockNote,
	}
}

func locationHash(location string) int {
	digest := fnv.New32a()
	digest.Write([]byte(strings.ToLower(location)))
	return int(digest.Sum32() % 100)
}
