// README: Destination catalog store backed by PostgreSQL (read-only).
package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"waypoint/internal/modules/profile"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

const destinationColumns = `
	id, name, country, description, budget_tier, avg_daily_cost, best_seasons,
	interest_art, interest_food, interest_nature, interest_adventure,
	interest_nightlife, interest_shopping, interest_history, interest_relaxation,
	pace_relaxed, pace_moderate, pace_fast`

// ListCities returns all city destinations in catalog order. The order is part
// of the ranking contract: equal scores keep it.
func (s *Store) ListCities(ctx context.Context) ([]Destination, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations
		WHERE kind = 'city' AND interest_art IS NOT NULL
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dests []Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		dests = append(dests, d)
	}
	return dests, rows.Err()
}

// GetDestination fetches a single destination by id.
func (s *Store) GetDestination(ctx context.Context, id int64) (*Destination, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+destinationColumns+`
		FROM destinations
		WHERE id = $1`, id)

	d, err := scanDestination(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDestination(row pgx.Row) (Destination, error) {
	var d Destination
	var art, food, nature, adventure, nightlife, shopping, history, relaxation int
	var relaxed, moderate, fast int

	err := row.Scan(
		&d.ID, &d.Name, &d.Country, &d.Description, &d.BudgetTier, &d.AvgDailyCost, &d.BestSeasons,
		&art, &food, &nature, &adventure,
		&nightlife, &shopping, &history, &relaxation,
		&relaxed, &moderate, &fast,
	)
	if err != nil {
		return Destination{}, err
	}

	d.Interests = map[string]int{
		"art":        art,
		"food":       food,
		"nature":     nature,
		"adventure":  adventure,
		"nightlife":  nightlife,
		"shopping":   shopping,
		"history":    history,
		"relaxation": relaxation,
	}
	d.Paces = map[profile.Pace]int{
		profile.PaceRelaxed:  relaxed,
		profile.PaceModerate: moderate,
		profile.PaceFast:     fast,
	}
	return d, nil
}
