// README: Weighted destination ranking against a user profile.
package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"waypoint/internal/modules/catalog"
	"waypoint/internal/modules/profile"
)

// Rank scores every destination against the profile and returns the top limit
// results, descending by score. The sort is stable: equal scores keep catalog
// order, which ranking consumers and test fixtures rely on. Rank is total and
// deterministic for a fixed profile and catalog snapshot.
func Rank(p profile.Profile, dests []catalog.Destination, limit int) []MatchResult {
	results := make([]MatchResult, 0, len(dests))
	for _, d := range dests {
		results = append(results, scoreDestination(p, d))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreDestination(p profile.Profile, d catalog.Destination) MatchResult {
	var score float64
	var reasons []string

	// Interest alignment.
	interestAvg := interestAverage(p.Interests, d)
	score += interestAvg * interestWeight / 100
	if interestAvg > interestReasonThreshold {
		top := p.Interests
		if len(top) > 3 {
			top = top[:3]
		}
		reasons = append(reasons, fmt.Sprintf("Perfect match for %s", strings.Join(top, ", ")))
	}

	// Budget fit.
	if p.Budget != "" && d.BudgetTier == p.Budget {
		score += budgetExactPoints
		reasons = append(reasons, fmt.Sprintf("Fits your %s budget (€%.0f/day)", p.Budget, d.AvgDailyCost))
	} else if tierDistance(d.BudgetTier, p.Budget) == 1 {
		score += budgetAdjacentPoints
	}

	// Season alignment.
	if seasonMatches(d.BestSeasons, p.TravelSeason) {
		score += seasonPoints
		reasons = append(reasons, fmt.Sprintf("Ideal for %s travel", p.TravelSeason))
	}

	// Pace alignment.
	paceScore := d.PaceScore(p.Pace)
	score += float64(paceScore) * paceWeight / 100
	if paceScore > paceReasonThreshold {
		reasons = append(reasons, fmt.Sprintf("Great for %s travelers", p.Pace))
	}

	final := int(math.Round(score))
	if final > 100 {
		final = 100
	}
	if final < 0 {
		final = 0
	}
	return MatchResult{Destination: d, Score: final, Reasons: reasons}
}

// interestAverage is the mean affinity over the profile's interests, or a
// neutral default when no interests are recorded.
func interestAverage(interests []string, d catalog.Destination) float64 {
	if len(interests) == 0 {
		return neutralInterestScore
	}
	total := 0
	for _, name := range interests {
		total += d.InterestScore(name)
	}
	return float64(total) / float64(len(interests))
}

var tierOrder = []profile.Budget{profile.BudgetLow, profile.BudgetModerate, profile.BudgetLuxury}

// tierDistance is the absolute distance between two budget tiers in the
// ordered scale budget < moderate < luxury. Unknown tiers count as distance 0
// so malformed catalog rows never score budget points negatively here.
func tierDistance(a, b profile.Budget) int {
	ia, ib := -1, -1
	for i, t := range tierOrder {
		if t == a {
			ia = i
		}
		if t == b {
			ib = i
		}
	}
	if ia == -1 || ib == -1 {
		return 0
	}
	if ia > ib {
		return ia - ib
	}
	return ib - ia
}

func seasonMatches(bestSeasons, season string) bool {
	if bestSeasons == "" || season == "" {
		return false
	}
	return strings.Contains(strings.ToLower(bestSeasons), strings.ToLower(season))
}
