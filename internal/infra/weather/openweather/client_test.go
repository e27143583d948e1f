package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrentMapsResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Chennai", r.URL.Query().Get("q"))
		require.Equal(t, "test-key", r.URL.Query().Get("appid"))
		require.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 31.46, "humidity": 74},
			"weather": [{"main": "Clear", "description": "clear sky"}],
			"name": "Chennai",
			"sys": {"country": "IN"}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	snapshot, err := client.Current(context.Background(), "Chennai")
	require.NoError(t, err)
	require.Equal(t, 31.5, snapshot.Temperature)
	require.Equal(t, 74, snapshot.Humidity)
	require.Equal(t, 7, snapshot.UVIndex)
	require.Equal(t, "Clear", snapshot.Condition)
	require.Equal(t, "clear sky", snapshot.Description)
	require.Equal(t, "Chennai, IN", snapshot.Location)
	require.Empty(t, snapshot.Note)
}

func TestCurrentAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod": "404", "message": "city not found"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	_, err := client.Current(context.Background(), "Nowhereville")
	require.Error(t, err)
	require.Contains(t, err.Error(), "city not found")
}

func TestCurrentAPIErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	_, err := client.Current(context.Background(), "Chennai")
	require.Error(t, err)
	require.Contains(t, err.Error(), "HTTP 502")
}

func TestCurrentFallsBackToRequestedLocation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 10, "humidity": 80}, "weather": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)

	snapshot, err := client.Current(context.Background(), "Chennai")
	require.NoError(t, err)
	require.Equal(t, "Chennai", snapshot.Location)
	require.Equal(t, 3, snapshot.UVIndex)
}

func TestEstimateUVIndex(t *testing.T) {
	tests := []struct {
		condition string
		want      int
	}{
		{"Clear", 7},
		{"Sunny", 7},
		{"Clouds", 4},
		{"Partly Cloudy", 4},
		{"Rain", 3},
		{"", 3},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, estimateUVIndex(tc.condition), "condition %q", tc.condition)
	}
}
