// README: Suggestion-chip generation backed by the text generator.
package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"waypoint/internal/ai"
)

const maxSuggestions = 6

type Service struct {
	gen ai.TextGenerator
	log zerolog.Logger
}

func NewService(gen ai.TextGenerator, log zerolog.Logger) *Service {
	return &Service{gen: gen, log: log}
}

// Generate produces short suggested replies to the agent's last message.
// A malformed model response degrades to an empty list, never an error: chips
// are decoration, the conversation works without them.
func (s *Service) Generate(ctx context.Context, lastMessage string, section int) ([]string, error) {
	prompt := buildSuggestionPrompt(lastMessage, section)
	text, err := s.gen.Generate(ctx, prompt, "")
	if err != nil {
		return nil, err
	}

	chips := parseSuggestions(text)
	if chips == nil {
		s.log.Warn().Int("section", section).Msg("suggestion response did not parse, returning none")
	}
	return chips, nil
}

// parseSuggestions extracts a JSON string array from the model output,
// tolerating markdown fences and surrounding prose. Unparseable input yields nil.
func parseSuggestions(raw string) []string {
	cleaned := ai.StripFences(raw)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	var parsed []string
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return nil
	}

	chips := make([]string, 0, maxSuggestions)
	for _, s := range parsed {
		if strings.TrimSpace(s) == "" {
			continue
		}
		chips = append(chips, s)
		if len(chips) == maxSuggestions {
			break
		}
	}
	if len(chips) == 0 {
		return nil
	}
	return chips
}

func buildSuggestionPrompt(lastMessage string, section int) string {
	return fmt.Sprintf(`You are a suggestion generator for a travel booking assistant.

Based on the assistant's last message, generate 5-6 SHORT, ACTIONABLE suggestions that would help the user respond naturally.

RULES:
1. Suggestions should directly answer what the assistant is asking
2. Keep them SHORT (under 60 characters each)
3. Make them conversational and natural
4. Include relevant emojis where appropriate
5. Vary the options (budget/luxury, specific/general, etc.)
6. Return ONLY a JSON array of strings, nothing else

CONTEXT:
- Current Section: %d
- Assistant's last message: "%s"

Examples of GOOD suggestions:
- If asked about budget: ["Moderate budget (€150-300/day)", "Luxury experience (€500+/day)", "Budget-friendly (under €100/day)"]
- If asked about interests: ["🎨 Art galleries and museums", "🍷 Wine tasting and local cuisine", "⛰️ Hiking and nature"]
- If asked about dates: ["June 15-20 (5 nights)", "First week of July", "Flexible, mid-summer"]

Return format: ["suggestion 1", "suggestion 2", "suggestion 3", "suggestion 4", "suggestion 5", "suggestion 6"]`,
		section, lastMessage)
}
