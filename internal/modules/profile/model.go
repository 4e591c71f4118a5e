// README: User travel profile accumulated during the profile-gathering stage.
package profile

type Budget string

const (
	BudgetLow      Budget = "budget"
	BudgetModerate Budget = "moderate"
	BudgetLuxury   Budget = "luxury"
)

type GroupType string

const (
	GroupSolo   GroupType = "solo"
	GroupCouple GroupType = "couple"
	GroupFamily GroupType = "family"
	GroupGroup  GroupType = "group"
)

type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PaceFast     Pace = "fast"
)

type WeatherPref string

const (
	WeatherAny  WeatherPref = "any"
	WeatherWarm WeatherPref = "warm"
	WeatherMild WeatherPref = "mild"
	WeatherCool WeatherPref = "cool"
)

// InterestVocabulary is the full set of recognised interests, in canonical order.
// Catalog affinity maps and the extractor rule tables are keyed by these entries.
var InterestVocabulary = []string{
	"art", "food", "nature", "adventure",
	"nightlife", "shopping", "history", "relaxation",
}

// Profile is the partial record of user travel preferences. All fields are
// optional until Validate reports the profile complete.
type Profile struct {
	Interests    []string    `json:"interests"`
	Budget       Budget      `json:"budget"`
	GroupType    GroupType   `json:"group_type"`
	GroupSize    int         `json:"group_size"`
	DurationDays int         `json:"duration_days"`
	TravelSeason string      `json:"travel_season"`
	Pace         Pace        `json:"pace"`
	WeatherPref  WeatherPref `json:"weather_pref"`
}

// Update carries fields extracted from a single message. Zero values mean
// "not mentioned"; Merge leaves the corresponding profile field untouched.
type Update struct {
	Interests    []string
	Budget       Budget
	GroupType    GroupType
	GroupSize    int
	DurationDays int
	TravelSeason string
	Pace         Pace
	WeatherPref  WeatherPref
}

// IsEmpty reports whether the update carries no extracted fields.
func (u Update) IsEmpty() bool {
	return len(u.Interests) == 0 && u.Budget == "" && u.GroupType == "" &&
		u.GroupSize == 0 && u.DurationDays == 0 && u.TravelSeason == "" &&
		u.Pace == "" && u.WeatherPref == ""
}

// Merge applies the non-empty fields of u onto p, last write wins per field,
// and returns the merged profile. The receiver is not mutated.
func (p Profile) Merge(u Update) Profile {
	if len(u.Interests) > 0 {
		p.Interests = u.Interests
	}
	if u.Budget != "" {
		p.Budget = u.Budget
	}
	if u.GroupType != "" {
		p.GroupType = u.GroupType
	}
	if u.GroupSize > 0 {
		p.GroupSize = u.GroupSize
	}
	if u.DurationDays > 0 {
		p.DurationDays = u.DurationDays
	}
	if u.TravelSeason != "" {
		p.TravelSeason = u.TravelSeason
	}
	if u.Pace != "" {
		p.Pace = u.Pace
	}
	if u.WeatherPref != "" {
		p.WeatherPref = u.WeatherPref
	}
	return p
}
