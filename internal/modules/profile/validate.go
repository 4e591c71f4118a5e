// README: Profile completeness validation with a fixed missing-field order.
package profile

// ValidationResult reports completeness and any missing fields.
type ValidationResult struct {
	IsComplete bool     `json:"is_complete"`
	Missing    []string `json:"missing"`
}

// Missing-field labels keep a fixed canonical order so generated prompts are
// deterministic across runs for the same profile.
const (
	LabelInterests = "Travel interests"
	LabelBudget    = "Budget range"
	LabelGroupType = "Group type"
	LabelTravelers = "Number of travelers"
	LabelDuration  = "Trip duration"
	LabelSeason    = "Travel dates or season"
	LabelPace      = "Travel pace"
	LabelWeather   = "Weather preference"
)

// Validate reports whether the profile is complete and, if not, which fields
// are still missing, in canonical order.
func Validate(p Profile) ValidationResult {
	var missing []string

	if len(p.Interests) == 0 {
		missing = append(missing, LabelInterests)
	}
	if p.Budget == "" {
		missing = append(missing, LabelBudget)
	}
	if p.GroupType == "" {
		missing = append(missing, LabelGroupType)
	}
	if p.GroupSize < 1 {
		missing = append(missing, LabelTravelers)
	}
	if p.DurationDays < 1 {
		missing = append(missing, LabelDuration)
	}
	if p.TravelSeason == "" {
		missing = append(missing, LabelSeason)
	}
	if p.Pace == "" {
		missing = append(missing, LabelPace)
	}
	if p.WeatherPref == "" {
		missing = append(missing, LabelWeather)
	}

	return ValidationResult{IsComplete: len(missing) == 0, Missing: missing}
}
