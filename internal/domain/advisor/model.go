package advisor

import (
	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
)

// AnalysisRequest carries one inbound analysis call. It lives for exactly one
// request and is never persisted.
type AnalysisRequest struct {
	Image      []byte
	Occupation string
	Location   string
	Age        *int
}

// Factor is one weighted input to the recommendation prompt.
type Factor struct {
	Name     string `json:"name"`
	Weight   int    `json:"weight"`
	Value    string `json:"value"`
	Analysis string `json:"analysis"`
}

// WeightedContext bundles the four prioritized factors plus the raw values
// they were derived from. Factors are always ordered skin type, weather,
// occupation, age and their weights sum to 100.
type WeightedContext struct {
	Factors    []Factor
	SkinType   skintype.SkinType
	Weather    weather.Snapshot
	Occupation string
	Age        *int
}

// DailyRoutine is the morning/evening split of the fallback template.
type DailyRoutine struct {
	Morning []string `json:"morning"`
	Evening []string `json:"evening"`
}

// Recommendation is either AI generated free text (Personalized true, only
// Recommendations set) or the structured fallback template (Personalized
// false, routine and tip lists populated). The Personalized flag is the only
// signal callers get to tell the two apart.
type Recommendation struct {
	SkinType        string        `json:"skin_type"`
	Personalized    bool          `json:"personalized"`
	Recommendations string        `json:"recommendations"`
	DailyRoutine    *DailyRoutine `json:"daily_routine,omitempty"`
	Products        []string      `json:"product_recommendations,omitempty"`
	WeatherTips     []string      `json:"weather_tips,omitempty"`
	LifestyleTips   []string      `json:"lifestyle_tips,omitempty"`
	Note            string        `json:"note,omitempty"`
}

// Result is the combined analysis returned to the presentation layer.
type Result struct {
	SkinType       skintype.SkinType `json:"skin_type"`
	Weather        weather.Snapshot  `json:"weather_data"`
	Recommendation Recommendation    `json:"recommendations"`
}

// Config wires runtime settings for the advisor domain.
type Config struct {
	Model       string
	Temperature float32
	Prompt      string
}
