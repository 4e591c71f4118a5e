// README: Completeness validation property tests.
package profile

import (
	"reflect"
	"testing"
)

func completeProfile() Profile {
	return Profile{
		Interests:    []string{"food"},
		Budget:       BudgetLuxury,
		GroupType:    GroupCouple,
		GroupSize:    2,
		DurationDays: 5,
		TravelSeason: "summer",
		Pace:         PaceRelaxed,
		WeatherPref:  WeatherWarm,
	}
}

func TestValidateComplete(t *testing.T) {
	v := Validate(completeProfile())
	if !v.IsComplete {
		t.Fatalf("expected complete, missing: %v", v.Missing)
	}
	if len(v.Missing) != 0 {
		t.Fatalf("expected no missing fields, got %v", v.Missing)
	}
}

// Missing any single field flips completeness and surfaces that field's label.
func TestValidateMissingSingleField(t *testing.T) {
	cases := []struct {
		label string
		mod   func(*Profile)
	}{
		{LabelInterests, func(p *Profile) { p.Interests = nil }},
		{LabelBudget, func(p *Profile) { p.Budget = "" }},
		{LabelGroupType, func(p *Profile) { p.GroupType = "" }},
		{LabelTravelers, func(p *Profile) { p.GroupSize = 0 }},
		{LabelDuration, func(p *Profile) { p.DurationDays = 0 }},
		{LabelSeason, func(p *Profile) { p.TravelSeason = "" }},
		{LabelPace, func(p *Profile) { p.Pace = "" }},
		{LabelWeather, func(p *Profile) { p.WeatherPref = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			p := completeProfile()
			tc.mod(&p)
			v := Validate(p)
			if v.IsComplete {
				t.Fatalf("expected incomplete when %q missing", tc.label)
			}
			if len(v.Missing) != 1 || v.Missing[0] != tc.label {
				t.Fatalf("Missing = %v, want [%q]", v.Missing, tc.label)
			}
		})
	}
}

func TestValidateEmptyProfileMissingOrder(t *testing.T) {
	v := Validate(Profile{})
	want := []string{
		LabelInterests, LabelBudget, LabelGroupType, LabelTravelers,
		LabelDuration, LabelSeason, LabelPace, LabelWeather,
	}
	if !reflect.DeepEqual(v.Missing, want) {
		t.Fatalf("Missing = %v, want canonical order %v", v.Missing, want)
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	p := completeProfile()
	p.GroupSize = 1
	p.DurationDays = 1
	if v := Validate(p); !v.IsComplete {
		t.Fatalf("size 1 / 1 day should be valid, missing: %v", v.Missing)
	}

	p.GroupSize = -3
	if v := Validate(p); v.IsComplete {
		t.Fatal("negative group size should be invalid")
	}
}
