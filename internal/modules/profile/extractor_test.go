// README: Extraction rule-table tests.
package profile

import (
	"reflect"
	"testing"
)

func TestExtractInterests(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    []string
	}{
		{"single interest", "I love visiting a good museum", []string{"art"}},
		{"multiple interests keep canonical order", "great food, a castle and some nightlife please", []string{"food", "nightlife", "history"}},
		{"interest synonyms", "we enjoy hiking and rafting", []string{"nature", "adventure"}},
		{"no interests", "hello there", nil},
		{"word boundaries respected", "I work in the artillery business", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Extract(tc.message)
			if !reflect.DeepEqual(got.Interests, tc.want) {
				t.Errorf("Extract(%q).Interests = %v, want %v", tc.message, got.Interests, tc.want)
			}
		})
	}
}

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		message string
		want    Budget
	}{
		{"something cheap and cheerful", BudgetLow},
		{"a luxurious escape", BudgetLuxury},
		{"mid-range works for us", BudgetModerate},
		{"no preference stated", ""},
	}
	for _, tc := range cases {
		if got := Extract(tc.message).Budget; got != tc.want {
			t.Errorf("Extract(%q).Budget = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestExtractGroup(t *testing.T) {
	cases := []struct {
		message  string
		wantType GroupType
		wantSize int
	}{
		{"traveling alone this time", GroupSolo, 1},
		{"me and my wife", GroupCouple, 2},
		{"family trip with the kids", GroupFamily, 0},
		{"a group of friends", GroupGroup, 0},
		{"family of 4 people", GroupFamily, 4},
	}
	for _, tc := range cases {
		u := Extract(tc.message)
		if u.GroupType != tc.wantType || u.GroupSize != tc.wantSize {
			t.Errorf("Extract(%q) = (%q, %d), want (%q, %d)",
				tc.message, u.GroupType, u.GroupSize, tc.wantType, tc.wantSize)
		}
	}
}

func TestExtractDurationAndSeason(t *testing.T) {
	u := Extract("5 days in June sounds right")
	if u.DurationDays != 5 {
		t.Errorf("DurationDays = %d, want 5", u.DurationDays)
	}
	if u.TravelSeason != "summer" {
		t.Errorf("TravelSeason = %q, want summer", u.TravelSeason)
	}

	u = Extract("maybe 3 nights in October")
	if u.DurationDays != 3 {
		t.Errorf("DurationDays = %d, want 3", u.DurationDays)
	}
	if u.TravelSeason != "fall" {
		t.Errorf("TravelSeason = %q, want fall", u.TravelSeason)
	}
}

func TestExtractPaceAndWeather(t *testing.T) {
	u := Extract("a relaxed trip somewhere warm")
	if u.Pace != PaceRelaxed {
		t.Errorf("Pace = %q, want relaxed", u.Pace)
	}
	if u.WeatherPref != WeatherWarm {
		t.Errorf("WeatherPref = %q, want warm", u.WeatherPref)
	}

	u = Extract("keep it busy, cold weather is fine")
	if u.Pace != PaceFast {
		t.Errorf("Pace = %q, want fast", u.Pace)
	}
	if u.WeatherPref != WeatherCool {
		t.Errorf("WeatherPref = %q, want cool", u.WeatherPref)
	}
}

func TestExtractIsTotal(t *testing.T) {
	for _, msg := range []string{"", "    ", "!!!", "12345"} {
		u := Extract(msg)
		if !u.IsEmpty() {
			t.Errorf("Extract(%q) = %+v, want empty update", msg, u)
		}
	}
}

func TestExtractFullProfileInOneMessage(t *testing.T) {
	u := Extract("We're a couple who love art and food, fancy a luxury trip, 5 days in June, relaxed pace, warm weather please")

	merged := Profile{}.Merge(u)
	v := Validate(merged)
	if !v.IsComplete {
		t.Fatalf("expected complete profile, missing: %v", v.Missing)
	}
	if merged.GroupSize != 2 {
		t.Errorf("GroupSize = %d, want 2 (inferred from couple)", merged.GroupSize)
	}
}

func TestMergeLastWriteWinsPerField(t *testing.T) {
	p := Profile{Budget: BudgetModerate, DurationDays: 3, Interests: []string{"art"}}

	merged := p.Merge(Update{Budget: BudgetLuxury})
	if merged.Budget != BudgetLuxury {
		t.Errorf("Budget = %q, want the later luxury value to win", merged.Budget)
	}
	if merged.DurationDays != 3 || len(merged.Interests) != 1 {
		t.Errorf("untouched fields changed: %+v", merged)
	}

	// Empty update leaves everything alone.
	if got := p.Merge(Update{}); !reflect.DeepEqual(got, p) {
		t.Errorf("Merge(empty) = %+v, want %+v", got, p)
	}
}
