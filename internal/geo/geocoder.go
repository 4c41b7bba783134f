// Package geo resolves country and city names to coordinates, combining a
// static country reference table with a geocoding service fallback.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Place is a resolved location. Label carries the capital or city name that
// climate summaries are attributed to.
type Place struct {
	Lat   float64
	Lng   float64
	Label string
}

// Geocoder resolves a free-text place query to coordinates.
// This interface allows swapping the Google implementation for test doubles.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Place, error)
}

// GoogleGeocoder implements Geocoder using the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a GoogleGeocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first geocoding result for the query.
func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (Place, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: query})
	if err != nil {
		return Place{}, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return Place{}, fmt.Errorf("no geocoding results for %q", query)
	}
	loc := results[0].Geometry.Location
	return Place{Lat: loc.Lat, Lng: loc.Lng, Label: query}, nil
}
