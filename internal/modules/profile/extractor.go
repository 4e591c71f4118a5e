// README: Rule-based extraction of profile fields from free text.
package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// The extractor is deliberately heuristic: explicit keyword tables matched on
// word boundaries, no statistical model. Keep the tables named and visible so
// they stay independently testable and tunable.

var interestKeywords = map[string][]string{
	"art":        {"art", "museum", "gallery", "painting", "sculpture"},
	"food":       {"food", "cuisine", "restaurant", "dining", "culinary", "eat"},
	"nature":     {"nature", "hiking", "outdoor", "mountain", "forest", "park"},
	"adventure":  {"adventure", "thrill", "exciting", "climbing", "rafting"},
	"nightlife":  {"nightlife", "party", "club", "bar", "dancing"},
	"shopping":   {"shopping", "shop", "mall", "boutique"},
	"history":    {"history", "historical", "ancient", "heritage", "castle"},
	"relaxation": {"relax", "relaxation", "spa", "beach", "peaceful"},
}

var budgetKeywords = map[Budget][]string{
	BudgetLow:      {"budget", "cheap", "affordable", "economical"},
	BudgetLuxury:   {"luxury", "luxurious", "upscale", "premium", "expensive"},
	BudgetModerate: {"moderate", "mid-range", "medium"},
}

var groupKeywords = map[GroupType][]string{
	GroupSolo:   {"solo", "alone", "by myself", "myself"},
	GroupCouple: {"couple", "partner", "husband", "wife", "boyfriend", "girlfriend"},
	GroupFamily: {"family", "kids", "children"},
	GroupGroup:  {"group", "friends"},
}

var paceKeywords = map[Pace][]string{
	PaceRelaxed:  {"relaxed", "slow", "leisurely", "easy"},
	PaceFast:     {"fast", "quick", "packed", "busy"},
	PaceModerate: {"moderate", "balanced", "mix"},
}

var weatherKeywords = map[WeatherPref][]string{
	WeatherWarm: {"warm", "hot", "sunny", "tropical"},
	WeatherCool: {"cool", "cold", "winter"},
	WeatherMild: {"mild", "temperate", "spring", "fall"},
}

var seasonKeywords = map[string][]string{
	"summer": {"june", "july", "august", "summer"},
	"winter": {"december", "january", "february", "winter"},
	"spring": {"march", "april", "may", "spring"},
	"fall":   {"september", "october", "november", "fall", "autumn"},
}

// seasonOrder fixes the check order so overlapping month tokens resolve the
// same way on every run.
var seasonOrder = []string{"summer", "winter", "spring", "fall"}

var (
	durationPattern  = regexp.MustCompile(`(?i)(\d+)\s*(day|night)`)
	groupSizePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:people|persons?|travell?ers|adults|of us)`)
)

var wordPatterns = map[string]*regexp.Regexp{}

func init() {
	compile := func(words []string) *regexp.Regexp {
		escaped := make([]string, len(words))
		for i, w := range words {
			escaped[i] = regexp.QuoteMeta(w)
		}
		return regexp.MustCompile(`\b(` + strings.Join(escaped, "|") + `)\b`)
	}
	for name, words := range interestKeywords {
		wordPatterns["interest:"+name] = compile(words)
	}
	for tier, words := range budgetKeywords {
		wordPatterns["budget:"+string(tier)] = compile(words)
	}
	for gt, words := range groupKeywords {
		wordPatterns["group:"+string(gt)] = compile(words)
	}
	for pace, words := range paceKeywords {
		wordPatterns["pace:"+string(pace)] = compile(words)
	}
	for pref, words := range weatherKeywords {
		wordPatterns["weather:"+string(pref)] = compile(words)
	}
	for season, words := range seasonKeywords {
		wordPatterns["season:"+season] = compile(words)
	}
}

// Extract maps free text to a partial profile update. It is total: any input
// yields an Update, possibly empty.
func Extract(message string) Update {
	lower := strings.ToLower(message)
	var u Update

	// Interests follow the canonical vocabulary order, never map order.
	for _, name := range InterestVocabulary {
		if wordPatterns["interest:"+name].MatchString(lower) {
			u.Interests = append(u.Interests, name)
		}
	}

	switch {
	case wordPatterns["budget:"+string(BudgetLow)].MatchString(lower):
		u.Budget = BudgetLow
	case wordPatterns["budget:"+string(BudgetLuxury)].MatchString(lower):
		u.Budget = BudgetLuxury
	case wordPatterns["budget:"+string(BudgetModerate)].MatchString(lower):
		u.Budget = BudgetModerate
	}

	switch {
	case wordPatterns["group:"+string(GroupSolo)].MatchString(lower):
		u.GroupType = GroupSolo
		u.GroupSize = 1
	case wordPatterns["group:"+string(GroupCouple)].MatchString(lower):
		u.GroupType = GroupCouple
		u.GroupSize = 2
	case wordPatterns["group:"+string(GroupFamily)].MatchString(lower):
		u.GroupType = GroupFamily
	case wordPatterns["group:"+string(GroupGroup)].MatchString(lower):
		u.GroupType = GroupGroup
	}

	if m := groupSizePattern.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			u.GroupSize = n
		}
	}

	if m := durationPattern.FindStringSubmatch(message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			u.DurationDays = n
		}
	}

	switch {
	case wordPatterns["pace:"+string(PaceRelaxed)].MatchString(lower):
		u.Pace = PaceRelaxed
	case wordPatterns["pace:"+string(PaceFast)].MatchString(lower):
		u.Pace = PaceFast
	case wordPatterns["pace:"+string(PaceModerate)].MatchString(lower):
		u.Pace = PaceModerate
	}

	switch {
	case wordPatterns["weather:"+string(WeatherWarm)].MatchString(lower):
		u.WeatherPref = WeatherWarm
	case wordPatterns["weather:"+string(WeatherCool)].MatchString(lower):
		u.WeatherPref = WeatherCool
	case wordPatterns["weather:"+string(WeatherMild)].MatchString(lower):
		u.WeatherPref = WeatherMild
	}

	for _, season := range seasonOrder {
		if wordPatterns["season:"+season].MatchString(lower) {
			u.TravelSeason = season
			break
		}
	}

	return u
}
