package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockSnapshotDeterministicAndBounded(t *testing.T) {
	locations := []string{"Chennai", "Mumbai", "Reykjavik", "São Paulo", ""}

	for _, location := range locations {
		first := MockSnapshot(location)
		second := MockSnapshot(location)
		require.Equal(t, first, second, "snapshot for %q must be stable", location)

		require.GreaterOrEqual(t, first.Temperature, 20.0)
		require.LessOrEqual(t, first.Temperature, 34.0)
		require.GreaterOrEqual(t, first.Humidity, 50)
		require.LessOrEqual(t, first.Humidity, 79)
		require.GreaterOrEqual(t, first.UVIndex, 3)
		require.LessOrEqual(t, first.UVIndex, 7)
		require.Contains(t, mockConditions, first.Condition)
		require.Equal(t, location, first.Location)
		require.Equal(t, mockNote, first.Note)
	}
}

func TestMockSnapshotCaseInsensitive(t *testing.T) {
	require.Equal(t, MockSnapshot("chennai").Temperature, MockSnapshot("CHENNAI").Temperature)
	require.Equal(t, MockSnapshot("chennai").Condition, MockSnapshot("Chennai").Condition)
}

func TestLookupWithoutClientUsesMock(t *testing.T) {
	svc := NewService(nil, testLogger())

	snapshot := svc.Lookup(context.Background(), "  Chennai ")
	require.Equal(t, MockSnapshot("Chennai"), snapshot)
	require.False(t, svc.Configured())
}

func TestLookupClientErrorFallsBackToMock(t *testing.T) {
	client := &stubClient{err: errors.New("upstream down")}
	svc := NewService(client, testLogger())

	snapshot := svc.Lookup(context.Background(), "Chennai")
	require.Equal(t, MockSnapshot("Chennai"), snapshot)
	require.Equal(t, 1, client.calls)
	require.True(t, svc.Configured())
}

func TestLookupReturnsClientSnapshot(t *testing.T) {
	want := Snapshot{Temperature: 27.5, Humidity: 64, UVIndex: 6, Condition: "Clouds", Location: "Chennai, IN"}
	client := &stubClient{snapshot: want}
	svc := NewService(client, testLogger())

	got := svc.Lookup(context.Background(), "Chennai")
	require.Equal(t, want, got)
	require.Empty(t, got.Note)
}

type stubClient struct {
	snapshot Snapshot
	err      error
	calls    int
}

func (s *stubClient) Current(ctx context.Context, location string) (Snapshot, error) {
	s.calls++
	if s.err != nil {
		return Snapshot{}, s.err
	}
	return s.snapshot, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
