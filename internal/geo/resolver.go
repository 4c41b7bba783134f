package geo

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// geocodeTimeout bounds every outbound geocoding call.
const geocodeTimeout = 5 * time.Second

// Resolver turns country and city names into coordinates. A nil result with
// a non-nil error means "location unavailable": the error carries the reason
// for logging, and callers degrade to fallback climate text instead of
// propagating it.
type Resolver struct {
	geocoder Geocoder
	log      *zap.Logger
}

// NewResolver creates a Resolver. geocoder may be nil, in which case every
// lookup that needs the geocoding service resolves as unavailable.
func NewResolver(geocoder Geocoder, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{geocoder: geocoder, log: log}
}

// ResolveCountry resolves a country name to its capital's coordinates.
// The static table is consulted first; when it lists a capital without
// coordinates, the geocoder is asked for "<capital>, <country>".
func (r *Resolver) ResolveCountry(ctx context.Context, country string) (*Place, error) {
	info, ok := lookupCountry(country)
	if !ok {
		return nil, fmt.Errorf("country %q not in reference table", country)
	}
	if info.hasCoords {
		return &Place{Lat: info.lat, Lng: info.lng, Label: info.capital}, nil
	}
	place, err := r.geocode(ctx, fmt.Sprintf("%s, %s", info.capital, country))
	if err != nil {
		return nil, err
	}
	place.Label = info.capital
	return place, nil
}

// ResolveCity resolves "<city>, <country>" via the geocoding service.
func (r *Resolver) ResolveCity(ctx context.Context, city, country string) (*Place, error) {
	place, err := r.geocode(ctx, fmt.Sprintf("%s, %s", city, country))
	if err != nil {
		return nil, err
	}
	place.Label = city
	return place, nil
}

func (r *Resolver) geocode(ctx context.Context, query string) (*Place, error) {
	if r.geocoder == nil {
		return nil, fmt.Errorf("no geocoder configured for %q", query)
	}
	ctx, cancel := context.WithTimeout(ctx, geocodeTimeout)
	defer cancel()

	place, err := r.geocoder.Geocode(ctx, query)
	if err != nil {
		r.log.Warn("geocoding failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return &place, nil
}
