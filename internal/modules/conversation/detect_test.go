// README: Table tests for the rule-based intent detectors.
package conversation

import (
	"testing"

	"waypoint/internal/modules/catalog"
	"waypoint/internal/modules/matching"
)

func recsFixture() []matching.MatchResult {
	return []matching.MatchResult{
		{Destination: catalog.Destination{ID: 1, Name: "Florence", Country: "Italy"}, Score: 93},
		{Destination: catalog.Destination{ID: 2, Name: "Kyoto", Country: "Japan"}, Score: 88},
		{Destination: catalog.Destination{ID: 3, Name: "Lisbon", Country: "Portugal"}, Score: 81},
	}
}

func TestDetectSelection(t *testing.T) {
	cases := []struct {
		name    string
		message string
		wantID  int64 // 0 means no selection
	}{
		{"keyword with name", "Let's go with Florence!", 1},
		{"book keyword", "I want to book Kyoto", 2},
		{"sounds good", "Lisbon sounds good to me", 3},
		{"short affirmation", "Yes, Florence!", 1},
		{"name without intent", "I visited Florence once as a child and the museums there were wonderful", 0},
		{"info request guard", "Tell me more about Florence", 0},
		{"info request with like", "I'd like more details about Kyoto please", 0},
		{"no name mentioned", "let's go with the first one you showed", 0},
		{"case insensitive", "LET'S GO WITH kyoto", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectSelection(tc.message, recsFixture())
			if tc.wantID == 0 {
				if got != nil {
					t.Fatalf("expected no selection, got %s", got.Destination.Name)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a selection, got nil")
			}
			if got.Destination.ID != tc.wantID {
				t.Fatalf("selected id = %d, want %d", got.Destination.ID, tc.wantID)
			}
		})
	}
}

func TestDetectSelectionAliasesRecs(t *testing.T) {
	recs := recsFixture()
	got := DetectSelection("pick Florence", recs)
	if got != &recs[0] {
		t.Fatal("selection should alias the recommendations slice element")
	}
}

func TestDetectReadiness(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    bool
	}{
		{"explicit keyword", "I'm ready to move on", true},
		{"finalize keyword", "Let's finalize the plan", true},
		{"two topic signals", "Boutique hotel and a museum tour please", true},
		{"three topic signals", "Boutique hotel, June 15-20, want a museum tour", true},
		{"single topic signal", "Maybe a hotel near the center", false},
		{"unrelated chat", "What's the weather like there?", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectReadiness(tc.message); got != tc.want {
				t.Fatalf("DetectReadiness(%q) = %v, want %v", tc.message, got, tc.want)
			}
		})
	}
}

func TestCountTopicSignals(t *testing.T) {
	if n := countTopicSignals("Boutique hotel, June 15-20, want a museum tour"); n != 3 {
		t.Fatalf("signals = %d, want 3", n)
	}
	if n := countTopicSignals("just chatting"); n != 0 {
		t.Fatalf("signals = %d, want 0", n)
	}
}

func TestDetectConfirmation(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"Confirm the booking", true},
		{"yes please", true},
		{"YES!", true},
		{"hmm let me think", false},
		{"no thanks", false},
	}
	for _, tc := range cases {
		if got := DetectConfirmation(tc.message); got != tc.want {
			t.Errorf("DetectConfirmation(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}
