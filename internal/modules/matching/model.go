// README: Match result type and scoring weights for destination ranking.
package matching

import (
	"waypoint/internal/modules/catalog"
)

// MatchResult is a scored, explained recommendation. It is derived data:
// recomputed on every ranking request and cached only for display.
type MatchResult struct {
	Destination catalog.Destination `json:"destination"`
	Score       int                 `json:"score"`
	Reasons     []string            `json:"match_reasons"`
}

// Component weights sum to 100.
const (
	// interestWeight scales the 0-100 interest average into its share of the score.
	interestWeight = 40
	// budgetExactPoints is awarded on an exact budget-tier match.
	budgetExactPoints = 25
	// budgetAdjacentPoints is awarded when the tiers are one step apart.
	budgetAdjacentPoints = 15
	// seasonPoints is awarded when the destination's best seasons contain the
	// profile's season token.
	seasonPoints = 15
	// paceWeight scales the 0-100 pace affinity into its share of the score.
	paceWeight = 20

	// neutralInterestScore is used when the profile records no interests, so
	// interest-less profiles are not penalized to zero.
	neutralInterestScore = 50

	// interestReasonThreshold: raw interest average above this emits a reason.
	interestReasonThreshold = 70
	// paceReasonThreshold: raw pace affinity above this emits a reason.
	paceReasonThreshold = 80
)
