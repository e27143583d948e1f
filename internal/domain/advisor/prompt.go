package advisor

import (
	"fmt"
	"strings"

	"github.com/sparsha/skincare-ai/internal/infra/llm/chatgpt"
)

var factorPriorities = []string{"HIGHEST", "SECOND", "THIRD", "LOWEST"}

// buildMessages renders the weighted context into chat messages, most
// important factor first.
func (s *service) buildMessages(wctx WeightedContext) []chatgpt.Message {
	var b strings.Builder
	b.WriteString("Create a personalized skincare recommendation for this exact combination of weighted factors:\n\n")

	for i, factor := range wctx.Factors {
		priority := factorPriorities[len(factorPriorities)-1]
		if i < len(factorPriorities) {
			priority = factorPriorities[i]
		}
		fmt.Fprintf(&b, "FACTOR %d - %s (weight %d%%, %s priority)\nValue: %s\nAnalysis: %s\n\n",
			i+1, strings.ToUpper(factor.Name), factor.Weight, priority, factor.Value, factor.Analysis)
	}

	b.WriteString("Base the core routine on the skin type, then modify it for the weather, ")
	b.WriteString("the occupation and the age in that order of importance. For every product, ")
	b.WriteString("explain why it fits this combination; a routine that would fit anyone with ")
	b.WriteString("the same skin type is wrong.\n\n")
	b.WriteString("Format the response with these sections:\n")
	b.WriteString("**Morning Routine (AM):**\n**Evening Routine (PM):**\n**Product Recommendations:**\n**Lifestyle Tips:**\n**Weekly Treatments:**\n**Important Considerations:**")

	return []chatgpt.Message{
		{Role: "system", Content: s.cfg.Prompt},
		{Role: "user", Content: b.String()},
	}
}

// buildRetryMessages is used once when the first answer looked like a generic
// template for the skin type.
func (s *service) buildRetryMessages(wctx WeightedContext) []chatgpt.Message {
	messages := s.buildMessages(wctx)
	reminder := fmt.Sprintf(
		"Your previous answer was too generic: it listed the products anyone with %s skin would get. Rewrite it so that changing only the weather (%s), the occupation (%s) or the age would change the products, and name specific ingredients and formulations with the reason each one fits this combination.",
		wctx.SkinType, wctx.Factors[1].Value, wctx.Occupation)
	messages[len(messages)-1].Content += "\n\n" + reminder
	return messages
}

var genericPhrases = []string{
	"gentle cleanser",
	"balancing toner",
	"lightweight moisturizer",
	"spf 30+ sunscreen",
	"gentle foaming cleanser",
	"alcohol-free toner",
}

var specificMarkers = []string{
	"salicylic acid",
	"niacinamide",
	"hyaluronic acid",
	"ceramide",
	"zinc oxide",
	"clay mask",
	"mattifying",
	"barrier repair",
}

// isGenericResponse flags answers that read like a stock per-skin-type
// template instead of one built from the weighted factors.
func isGenericResponse(text string) bool {
	lower := strings.ToLower(text)

	genericCount := 0
	for _, phrase := range genericPhrases {
		if strings.Contains(lower, phrase) {
			genericCount++
		}
	}
	if genericCount < 3 {
		return false
	}

	if len(text) < 800 {
		return true
	}

	hasReasoning := false
	for _, marker := range []string{"because", "due to", "since", "combat", "address", "prevent"} {
		if strings.Contains(lower, marker) {
			hasReasoning = true
			break
		}
	}
	hasSpecifics := false
	for _, marker := range specificMarkers {
		if strings.Contains(lower, marker) {
			hasSpecifics = true
			break
		}
	}

	return !(hasReasoning && hasSpecifics)
}
