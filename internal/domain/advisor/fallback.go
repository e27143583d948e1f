package advisor

import (
	"fmt"
	"strings"

	"github.com/sparsha/skincare-ai/internal/domain/skintype"
	"github.com/sparsha/skincare-ai/internal/domain/weather"
)

const fallbackNote = "AI recommendations unavailable. Using weighted context-based fallback."

// fallbackRecommendation builds the deterministic template returned whenever
// the generation capability is missing or fails. It still applies the
// weighted context so different requests get visibly different output.
func fallbackRecommendation(wctx WeightedContext) Recommendation {
	routine := personalizeRoutine(baseRoutine(wctx.SkinType), wctx)
	products := personalizeProducts(baseProducts(wctx.SkinType), wctx)
	tips := weatherTips(wctx.Weather)
	lifestyle := lifestyleTips(wctx)

	return Recommendation{
		SkinType:        wctx.SkinType.String(),
		Personalized:    false,
		Recommendations: formatFallbackText(wctx, routine, products, tips, lifestyle),
		DailyRoutine:    &routine,
		Products:        products,
		WeatherTips:     tips,
		LifestyleTips:   lifestyle,
		Note:            fallbackNote,
	}
}

func baseRoutine(skin skintype.SkinType) DailyRoutine {
	switch skin {
	case skintype.Oily:
		return DailyRoutine{
			Morning: []string{
				"Gentle foaming cleanser",
				"Alcohol-free toner",
				"Lightweight, oil-free moisturizer with SPF 30+",
				"Oil-free sunscreen",
			},
			Evening: []string{
				"Oil-based cleanser (double cleanse)",
				"Salicylic acid or benzoyl peroxide treatment",
				"Lightweight gel moisturizer",
				"Retinol serum (2-3 times per week)",
			},
		}
	case skintype.Dry:
		return DailyRoutine{
			Morning: []string{
				"Cream or oil-based cleanser",
				"Hydrating toner",
				"Rich moisturizer with ceramides",
				"SPF 30+ sunscreen",
			},
			Evening: []string{
				"Gentle cream cleanser",
				"Hydrating serum with hyaluronic acid",
				"Rich night cream",
				"Face oil (optional)",
			},
		}
	default:
		return DailyRoutine{
			Morning: []string{
				"Gentle cleanser",
				"Balancing toner",
				"Lightweight moisturizer",
				"SPF 30+ sunscreen",
			},
			Evening: []string{
				"Gentle cleanser",
				"Antioxidant serum",
				"Moisturizer",
				"Weekly exfoliation",
			},
		}
	}
}

func baseProducts(skin skintype.SkinType) []string {
	switch skin {
	case skintype.Oily:
		return []string{
			"Oil-free cleansers",
			"Salicylic acid products",
			"Clay masks",
			"Non-comedogenic moisturizers",
			"Mattifying primers",
		}
	case skintype.Dry:
		return []string{
			"Cream cleansers",
			"Hyaluronic acid serums",
			"Ceramide moisturizers",
			"Face oils",
			"Gentle exfoliants",
		}
	default:
		return []string{
			"Balanced cleansers",
			"Antioxidant serums",
			"Lightweight moisturizers",
			"Regular exfoliants",
			"SPF protection",
		}
	}
}

func personalizeRoutine(routine DailyRoutine, wctx WeightedContext) DailyRoutine {
	morning := append([]string(nil), routine.Morning...)
	evening := append([]string(nil), routine.Evening...)
	snapshot := wctx.Weather

	switch {
	case snapshot.Temperature > 28:
		morning = replaceAll(morning, "Rich", "Lightweight", "Heavy", "Light")
		if snapshot.UVIndex >= 7 {
			morning = replaceAll(morning, "SPF 30+", "SPF 50+")
		}
	case snapshot.Temperature < 10:
		morning = replaceAll(morning, "Lightweight", "Rich", "Light", "Nourishing")
	}

	switch {
	case snapshot.Humidity < 40:
		morning = append(morning, "Hydrating serum with hyaluronic acid")
	case snapshot.Humidity > 70:
		morning = replaceAll(morning, "Rich", "Gel-based", "Cream", "Gel")
	}

	occupation := strings.ToLower(wctx.Occupation)
	if containsAny(occupation, "outdoor", "construction", "field", "driver") {
		morning = append([]string{"Pre-work deep cleanser"}, morning...)
		morning = replaceAll(morning, "SPF 30+", "SPF 50+")
		evening = append([]string{"Post-work double cleanse to remove dirt and pollution"}, evening...)
		evening = append(evening, "Antioxidant serum (vitamin C) to combat environmental damage")
	}
	if containsAny(occupation, "doctor", "nurse", "healthcare", "medical") {
		morning = append(morning, "Barrier repair cream (for mask-wearing)")
		evening = append([]string{"Gentle micellar water (for mask area)"}, evening...)
	}
	if containsAny(occupation, "engineer", "developer", "programmer", "office", "desk") {
		morning = append(morning, "Blue light protection serum or cream", "Eye cream (for screen time)")
	}

	return DailyRoutine{Morning: morning, Evening: evening}
}

func personalizeProducts(products []string, wctx WeightedContext) []string {
	out := append([]string(nil), products...)
	snapshot := wctx.Weather

	switch {
	case snapshot.Temperature > 28:
		out = append(out, "Mattifying primers (for hot weather)", "Cooling gel masks")
	case snapshot.Temperature < 10:
		out = append(out, "Barrier repair creams", "Facial oils (for cold weather protection)")
	}

	switch {
	case snapshot.Humidity < 40:
		out = append(out, "Humectant-rich serums", "Occlusive night creams")
	case snapshot.Humidity > 70:
		out = append(out, "Water-based gel products", "Non-sticky formulations")
	}

	occupation := strings.ToLower(wctx.Occupation)
	if containsAny(occupation, "outdoor", "construction") {
		out = append(out, "Mineral sunscreens with zinc oxide", "Antioxidant serums (vitamin C, E)", "Detoxifying masks")
	}
	if containsAny(occupation, "doctor", "nurse", "healthcare") {
		out = append(out, "Barrier repair products", "Gentle, fragrance-free cleansers")
	}

	return out
}

func weatherTips(snapshot weather.Snapshot) []string {
	var tips []string
	if snapshot.UVIndex > 6 {
		tips = append(tips, "High UV index - use SPF 50+ and reapply every 2 hours")
	}
	if snapshot.Humidity < 40 {
		tips = append(tips, "Low humidity - increase moisturizer usage")
	}
	if snapshot.Temperature > 25 {
		tips = append(tips, "Hot weather - use lighter products and stay hydrated")
	}
	if snapshot.Temperature < 10 {
		tips = append(tips, "Cold weather - use richer moisturizers to protect skin barrier")
	}
	if len(tips) == 0 {
		tips = append(tips, "Maintain consistent skincare routine")
	}
	return tips
}

func lifestyleTips(wctx WeightedContext) []string {
	var tips []string
	occupation := strings.ToLower(wctx.Occupation)
	snapshot := wctx.Weather

	if containsAny(occupation, "outdoor", "construction") {
		tips = append(tips,
			"Reapply sunscreen every 2 hours during outdoor work",
			"Wear protective clothing and a wide-brimmed hat",
			"Shower immediately after work to remove pollutants")
	}
	if containsAny(occupation, "doctor", "nurse", "healthcare") {
		tips = append(tips,
			"Take mask breaks when possible to let skin breathe",
			"Use gentle, fragrance-free products to avoid irritation",
			"Keep a travel-sized moisturizer for frequent hand washing")
	}
	if containsAny(occupation, "engineer", "developer", "programmer") {
		tips = append(tips,
			"Take regular breaks from screens to reduce eye strain",
			"Maintain a consistent routine despite long work hours")
	}

	switch {
	case snapshot.Temperature > 28:
		tips = append(tips, "Stay hydrated - drink plenty of water in hot weather")
	case snapshot.Temperature < 10:
		tips = append(tips, "Protect skin from wind and cold with richer products", "Consider using a humidifier indoors")
	}
	switch {
	case snapshot.Humidity < 40:
		tips = append(tips, "Use a humidifier at home or work to combat dry air")
	case snapshot.Humidity > 70:
		tips = append(tips, "Avoid heavy creams that may feel sticky")
	}
	if snapshot.UVIndex >= 7 {
		tips = append(tips, "Avoid sun exposure during peak hours (10 AM - 4 PM)")
	}

	if wctx.Age != nil {
		if *wctx.Age < 25 {
			tips = append(tips, "Focus on prevention - establish good habits early")
		} else if *wctx.Age > 40 {
			tips = append(tips, "Prioritize barrier repair and hydration", "Consider professional treatments for anti-aging")
		}
	}

	if len(tips) == 0 {
		tips = append(tips, "Maintain consistent skincare routine")
	}
	return tips
}

func formatFallbackText(wctx WeightedContext, routine DailyRoutine, products, tips, lifestyle []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Personalized Recommendations for %s Skin**\n\n", titleCase(wctx.SkinType.String()))

	b.WriteString("**Daily Routine**\n\n**Morning:**\n")
	writeBullets(&b, routine.Morning)
	b.WriteString("\n**Evening:**\n")
	writeBullets(&b, routine.Evening)
	b.WriteString("\n**Product Recommendations:**\n")
	writeBullets(&b, products)
	if len(tips) > 0 {
		b.WriteString("\n**Weather Tips:**\n")
		writeBullets(&b, tips)
	}
	if len(lifestyle) > 0 {
		b.WriteString("\n**Lifestyle Tips:**\n")
		writeBullets(&b, lifestyle)
	}

	fmt.Fprintf(&b, "\n*Note: These recommendations are based on your %s skin type, %.1f°C weather", wctx.SkinType, wctx.Weather.Temperature)
	if wctx.Occupation != "" {
		fmt.Fprintf(&b, ", %s occupation", wctx.Occupation)
	}
	if wctx.Age != nil {
		fmt.Fprintf(&b, ", and age %d", *wctx.Age)
	}
	b.WriteString(".*")
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func replaceAll(items []string, pairs ...string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		for j := 0; j+1 < len(pairs); j += 2 {
			item = strings.ReplaceAll(item, pairs[j], pairs[j+1])
		}
		out[i] = item
	}
	return out
}

func containsAny(haystack string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
