// README: Heuristic intent detectors (destination selection, advance readiness).
package conversation

import (
	"regexp"
	"strings"

	"waypoint/internal/modules/matching"
)

// Detection is rule-based by design. The tables below are the whole model:
// keep them named and visible rather than inlined so they stay independently
// testable and tunable.

// selectionKeywords signal that a message naming a destination is choosing it.
var selectionKeywords = []string{
	"book", "choose", "select", "go with", "pick", "want", "take",
	"prefer", "like", "interested", "love", "sounds good", "perfect",
	"let's do", "let's go", "that one", "this one", "yes to",
}

// affirmationTokens confirm a short message that names a destination.
var affirmationTokens = []string{"yes", "ok", "sure"}

// infoRequestPhrases mark exploratory questions about a named destination.
// These are explicitly not selections, even though the name is present.
var infoRequestPhrases = []string{
	"tell me more about ", "more about ", "details about ", "information about ",
}

// shortMessageTokenLimit: at or below this many whitespace tokens a message
// counts as short for the affirmation rule.
const shortMessageTokenLimit = 5

// readinessKeywords signal the user wants to move from trip finalization to review.
var readinessKeywords = []string{
	"ready", "review", "confirm", "book", "looks good", "sounds perfect",
	"that works", "all set", "finalize", "proceed", "complete",
}

// Topic signal patterns for the lenient readiness rule: two of the three
// present means the user has volunteered enough concrete trip detail.
var (
	datePattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|\d{1,2}/|\d{1,2}-)\b`)

	accommodationPattern = regexp.MustCompile(`(?i)\b(hotel|accommodation|stay|boutique|hostel|airbnb|resort)\b`)

	activityPattern = regexp.MustCompile(`(?i)\b(tour|visit|see|museum|attraction|experience|activity)\b`)
)

// confirmationTokens close the booking in the review section.
var confirmationTokens = []string{"confirm", "yes"}

// DetectSelection reports which recommended destination, if any, the message
// selects. Exploratory questions about a named destination return nil. The
// returned pointer aliases an element of recs.
func DetectSelection(message string, recs []matching.MatchResult) *matching.MatchResult {
	lower := strings.ToLower(message)

	for i := range recs {
		name := strings.ToLower(recs[i].Destination.Name)
		if name == "" || !strings.Contains(lower, name) {
			continue
		}

		// Info requests are never selections; check before the keyword scan so
		// phrasings like "I'd like more details about X" don't false-positive.
		if isInfoRequest(lower, name) {
			return nil
		}

		for _, kw := range selectionKeywords {
			if strings.Contains(lower, kw) {
				return &recs[i]
			}
		}

		if len(strings.Fields(message)) <= shortMessageTokenLimit {
			for _, tok := range affirmationTokens {
				if strings.Contains(lower, tok) {
					return &recs[i]
				}
			}
		}
	}
	return nil
}

func isInfoRequest(lower, name string) bool {
	for _, phrase := range infoRequestPhrases {
		if strings.Contains(lower, phrase+name) {
			return true
		}
	}
	return false
}

// DetectReadiness reports whether the user is ready to advance from trip
// finalization to review: either an explicit readiness keyword, or at least
// two of the three topic signals (dates, accommodation, activities).
func DetectReadiness(message string) bool {
	return readinessKeywordPresent(message) || countTopicSignals(message) >= 2
}

func readinessKeywordPresent(message string) bool {
	lower := strings.ToLower(message)
	for _, kw := range readinessKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func countTopicSignals(message string) int {
	n := 0
	if datePattern.MatchString(message) {
		n++
	}
	if accommodationPattern.MatchString(message) {
		n++
	}
	if activityPattern.MatchString(message) {
		n++
	}
	return n
}

// DetectConfirmation reports whether a review-stage message confirms the booking.
func DetectConfirmation(message string) bool {
	lower := strings.ToLower(message)
	for _, tok := range confirmationTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}
