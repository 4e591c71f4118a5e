// README: Read-only destination catalog records with precomputed affinity scores.
package catalog

import (
	"errors"

	"waypoint/internal/modules/profile"
)

var ErrNotFound = errors.New("destination not found")

// Destination is an immutable catalog record. Affinity scores are addressed
// through explicit maps keyed by the interest vocabulary and pace enum, never
// by string-concatenated field names.
type Destination struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Country      string          `json:"country"`
	Description  string          `json:"description"`
	BudgetTier   profile.Budget  `json:"budget_tier"`
	AvgDailyCost float64         `json:"avg_daily_cost"`
	BestSeasons  string          `json:"best_seasons"`
	Interests    map[string]int  `json:"interests"`
	Paces        map[profile.Pace]int `json:"paces"`
}

// InterestScore returns the 0-100 affinity for the named interest, defaulting
// to a neutral 50 when the catalog carries no score for it.
func (d Destination) InterestScore(name string) int {
	if s, ok := d.Interests[name]; ok {
		return s
	}
	return 50
}

// PaceScore returns the 0-100 affinity for the given pace, defaulting to a
// neutral 50 when absent.
func (d Destination) PaceScore(p profile.Pace) int {
	if s, ok := d.Paces[p]; ok {
		return s
	}
	return 50
}
