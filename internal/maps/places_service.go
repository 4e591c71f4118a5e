// README: Google Places lookups that enrich trip-finalization prompts with attractions.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place represents a simplified attraction result.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	UserRatingsTotal int
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// TopAttractions searches for well-rated tourist attractions in the given
// city and returns at most limit results.
func (s *PlacesService) TopAttractions(ctx context.Context, city, country string, limit int) ([]Place, error) {
	r := &maps.TextSearchRequest{
		Query:    fmt.Sprintf("top tourist attractions in %s, %s", city, country),
		Type:     "tourist_attraction",
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	places := make([]Place, 0, limit)
	for _, result := range resp.Results {
		places = append(places, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if limit > 0 && len(places) >= limit {
			break
		}
	}
	return places, nil
}
