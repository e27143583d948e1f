package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
)

// Factor weights. The 40/30/20/10 split is the only configuration the
// downstream prompt and fallback tables are tuned for.
const (
	weightSkinType   = 40
	weightWeather    = 30
	weightOccupation = 20
	weightAge        = 10
)

const ageUnspecified = "unspecified"

// BuildWeightedContext combines the per-request signals into the prioritized
// factor list feeding the recommendation prompt. Pure; every input has a safe
// default so it cannot fail.
func BuildWeightedContext(skin skintype.SkinType, snapshot weather.Snapshot, occupation string, age *int) WeightedContext {
	if !skin.Valid() {
		skin = skintype.Default
	}
	occupation = strings.TrimSpace(occupation)

	ageValue := ageUnspecified
	if age != nil {
		ageValue = strconv.Itoa(*age)
	}

	factors := []Factor{
		{
			Name:     "skin type",
			Weight:   weightSkinType,
			Value:    skin.String(),
			Analysis: analyzeSkinType(skin),
		},
		{
			Name:     "weather",
			Weight:   weightWeather,
			Value:    describeWeather(snapshot),
			Analysis: analyzeWeather(snapshot),
		},
		{
			Name:     "occupation",
			Weight:   weightOccupation,
			Value:    occupation,
			Analysis: analyzeOccupation(occupation),
		},
		{
			Name:     "age",
			Weight:   weightAge,
			Value:    ageValue,
			Analysis: analyzeAge(age),
		},
	}

	return WeightedContext{
		Factors:    factors,
		SkinType:   skin,
		Weather:    snapshot,
		Occupation: occupation,
		Age:        age,
	}
}

func describeWeather(snapshot weather.Snapshot) string {
	return fmt.Sprintf("%.1f°C, %d%% humidity, UV %d, %s",
		snapshot.Temperature, snapshot.Humidity, snapshot.UVIndex, snapshot.Condition)
}

func analyzeSkinType(skin skintype.SkinType) string {
	switch skin {
	case skintype.Oily:
		return "Oily skin requires oil-control, pore-minimizing products. Focus on lightweight, non-comedogenic formulations; salicylic acid and niacinamide are beneficial. Avoid over-stripping with harsh cleansing."
	case skintype.Dry:
		return "Dry skin needs intensive hydration and barrier repair. Rich, emollient products with ceramides, hyaluronic acid and occlusives are essential. Avoid harsh cleansers and alcohol-based products."
	default:
		return "Normal skin tolerates a balanced routine. Focus on maintenance, prevention and gentle care while keeping the routine consistent."
	}
}

func analyzeWeather(snapshot weather.Snapshot) string {
	var parts []string

	switch {
	case snapshot.Temperature > 28:
		parts = append(parts, fmt.Sprintf("Hot climate (%.1f°C): skin produces more oil and sweat; lighter products and frequent cleansing are key.", snapshot.Temperature))
	case snapshot.Temperature < 10:
		parts = append(parts, fmt.Sprintf("Cold climate (%.1f°C): the skin barrier may be compromised; richer moisturizers and wind protection are essential.", snapshot.Temperature))
	default:
		parts = append(parts, fmt.Sprintf("Moderate temperature (%.1f°C): a standard routine should work well.", snapshot.Temperature))
	}

	switch {
	case snapshot.Humidity < 40:
		parts = append(parts, fmt.Sprintf("Low humidity (%d%%): skin loses moisture faster; increase hydration and use humectants.", snapshot.Humidity))
	case snapshot.Humidity > 70:
		parts = append(parts, fmt.Sprintf("High humidity (%d%%): heavy products feel sticky; gel-based formulations absorb better.", snapshot.Humidity))
	default:
		parts = append(parts, fmt.Sprintf("Moderate humidity (%d%%): balanced environment for skin.", snapshot.Humidity))
	}

	switch {
	case snapshot.UVIndex >= 7:
		parts = append(parts, fmt.Sprintf("Very high UV index (%d): SPF 50+ with reapplication every 2 hours plus physical barriers.", snapshot.UVIndex))
	case snapshot.UVIndex >= 5:
		parts = append(parts, fmt.Sprintf("High UV index (%d): SPF 30-50 with regular reapplication.", snapshot.UVIndex))
	default:
		parts = append(parts, fmt.Sprintf("Moderate UV index (%d): standard SPF 30 protection is sufficient.", snapshot.UVIndex))
	}

	lower := strings.ToLower(snapshot.Condition)
	if strings.Contains(lower, "rain") || strings.Contains(lower, "cloud") {
		parts = append(parts, "Cloudy or rainy conditions still require UV protection; UV penetrates clouds.")
	}

	return strings.Join(parts, " ")
}

var occupationCategories = []struct {
	keywords []string
	analysis string
}{
	{
		keywords: []string{"engineer", "developer", "programmer", "designer", "office", "desk", "admin", "manager", "analyst"},
		analysis: "Indoor office work: prolonged screen time and air conditioning dry the skin. Focus on hydration, eye care and regular breaks.",
	},
	{
		keywords: []string{"construction", "outdoor", "field", "delivery", "driver", "farming", "gardening"},
		analysis: "Outdoor work: high sun exposure, pollution and environmental stressors. Emphasize strong sun protection, antioxidant serums and thorough post-work cleansing.",
	},
	{
		keywords: []string{"doctor", "nurse", "medical", "healthcare", "hospital"},
		analysis: "Healthcare work: frequent hand washing, mask wearing and stress affect the skin. Focus on barrier repair and gentle cleansing.",
	},
	{
		keywords: []string{"makeup", "beauty", "stylist", "photographer", "model"},
		analysis: "Beauty or creative work: frequent product use requires double cleansing and barrier support, with regular skin recovery days.",
	},
	{
		keywords: []string{"server", "waiter", "retail", "sales", "customer service"},
		analysis: "Service industry: variable environments and irregular schedules. Focus on an adaptable routine and consistent basics.",
	},
	{
		keywords: []string{"teacher", "professor", "educator", "student"},
		analysis: "Education: stress, long hours and varied environments. Focus on stress management and a consistent protective routine.",
	},
}

func analyzeOccupation(occupation string) string {
	if occupation == "" {
		return "Occupation not specified; use general lifestyle recommendations."
	}
	lower := strings.ToLower(occupation)
	for _, category := range occupationCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				return category.analysis
			}
		}
	}
	return fmt.Sprintf("Occupation: %s. Consider the work environment, stress levels and schedule when shaping the routine.", occupation)
}

func analyzeAge(age *int) string {
	if age == nil {
		return "Age not specified; skip age specific adjustments."
	}
	switch {
	case *age < 20:
		return "Teenage or young adult skin: focus on prevention, gentle products and establishing good habits."
	case *age < 30:
		return "Young adult skin: prevention is key; antioxidants, SPF and a consistent routine."
	case *age < 40:
		return "Adult skin: begin incorporating anti-aging ingredients such as retinoids and peptides while maintaining hydration and sun protection."
	case *age < 50:
		return "Mature adult skin: increased focus on anti-aging, collagen support and barrier repair; richer formulations may be needed."
	default:
		return "Mature skin: emphasize barrier repair, hydration and gentle exfoliation; richer products and targeted treatments are beneficial."
	}
}

// TotalWeight returns the sum of all factor weights; always 100.
func (c WeightedContext) TotalWeight() int {
	total := 0
	for _, factor := range c.Factors {
		total += factor.Weight
	}
	return total
}
