package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
)

func TestFallbackRecommendationShape(t *testing.T) {
	wctx := BuildWeightedContext(skintype.Oily, weather.Snapshot{Temperature: 22, Humidity: 55, UVIndex: 4, Condition: "Clear"}, "accountant", nil)
	rec := fallbackRecommendation(wctx)

	require.False(t, rec.Personalized)
	require.Equal(t, "oily", rec.SkinType)
	require.NotNil(t, rec.DailyRoutine)
	require.NotEmpty(t, rec.DailyRoutine.Morning)
	require.NotEmpty(t, rec.DailyRoutine.Evening)
	require.NotEmpty(t, rec.Products)
	require.NotEmpty(t, rec.WeatherTips)
	require.NotEmpty(t, rec.LifestyleTips)
	require.NotEmpty(t, rec.Recommendations)
	require.Equal(t, fallbackNote, rec.Note)
}

func TestFallbackHotWeatherUpgradesSPF(t *testing.T) {
	hot := weather.Snapshot{Temperature: 34, Humidity: 50, UVIndex: 8, Condition: "Clear"}
	wctx := BuildWeightedContext(skintype.Normal, hot, "accountant", nil)
	rec := fallbackRecommendation(wctx)

	joined := ""
	for _, step := range rec.DailyRoutine.Morning {
		joined += step + "\n"
	}
	require.Contains(t, joined, "SPF 50+")
	require.NotContains(t, joined, "SPF 30+")
	require.Contains(t, rec.Products, "Mattifying primers (for hot weather)")
}

func TestFallbackOutdoorOccupationAdjustments(t *testing.T) {
	wctx := BuildWeightedContext(skintype.Oily, weather.Snapshot{Temperature: 20, Humidity: 50, UVIndex: 4}, "construction worker", nil)
	rec := fallbackRecommendation(wctx)

	require.Equal(t, "Pre-work deep cleanser", rec.DailyRoutine.Morning[0])
	require.Equal(t, "Post-work double cleanse to remove dirt and pollution", rec.DailyRoutine.Evening[0])
	require.Contains(t, rec.Products, "Mineral sunscreens with zinc oxide")
	require.Contains(t, rec.LifestyleTips, "Reapply sunscreen every 2 hours during outdoor work")
}

func TestFallbackHealthcareOccupationAdjustments(t *testing.T) {
	wctx := BuildWeightedContext(skintype.Dry, weather.Snapshot{Temperature: 20, Humidity: 50, UVIndex: 4}, "nurse", nil)
	rec := fallbackRecommendation(wctx)

	require.Contains(t, rec.DailyRoutine.Morning, "Barrier repair cream (for mask-wearing)")
	require.Equal(t, "Gentle micellar water (for mask area)", rec.DailyRoutine.Evening[0])
}

// The prompt and the fallback must be total over every legal combination,
// including an absent age.
func TestContextRoundTripNeverPanics(t *testing.T) {
	ages := []*int{nil, intPtr(16), intPtr(25), intPtr(35), intPtr(45), intPtr(60)}
	occupations := []string{"", "software engineer", "construction worker", "nurse", "makeup artist", "retail clerk", "teacher", "astronaut"}
	snapshots := []weather.Snapshot{
		{},
		{Temperature: 34, Humidity: 80, UVIndex: 9, Condition: "Clear"},
		{Temperature: 2, Humidity: 25, UVIndex: 1, Condition: "Snow"},
	}

	svc := &service{cfg: Config{Prompt: "test prompt"}}

	for _, skin := range skintype.All {
		for _, occupation := range occupations {
			for _, age := range ages {
				for _, snapshot := range snapshots {
					wctx := BuildWeightedContext(skin, snapshot, occupation, age)
					require.Equal(t, 100, wctx.TotalWeight())

					messages := svc.buildMessages(wctx)
					require.Len(t, messages, 2)
					require.NotEmpty(t, messages[1].Content)

					rec := fallbackRecommendation(wctx)
					require.False(t, rec.Personalized)
					require.NotEmpty(t, rec.DailyRoutine.Morning)
					require.NotEmpty(t, rec.DailyRoutine.Evening)
				}
			}
		}
	}
}

func intPtr(v int) *int {
	return &v
}
