package geo

import (
	"context"
	"errors"
	"math"
	"testing"
)

// stubGeocoder records queries and returns a fixed place or error.
type stubGeocoder struct {
	place   Place
	err     error
	queries []string
}

func (s *stubGeocoder) Geocode(_ context.Context, query string) (Place, error) {
	s.queries = append(s.queries, query)
	if s.err != nil {
		return Place{}, s.err
	}
	return s.place, nil
}

func TestResolveCountry_TableHit(t *testing.T) {
	stub := &stubGeocoder{}
	r := NewResolver(stub, nil)

	place, err := r.ResolveCountry(context.Background(), "Japan")
	if err != nil {
		t.Fatalf("ResolveCountry(Japan) error = %v", err)
	}
	if place.Label != "Tokyo" {
		t.Errorf("label = %q, want Tokyo", place.Label)
	}
	if math.Abs(place.Lat-35.68) > 0.01 || math.Abs(place.Lng-139.69) > 0.01 {
		t.Errorf("coordinates = (%f, %f), want (35.68, 139.69)", place.Lat, place.Lng)
	}
	if len(stub.queries) != 0 {
		t.Errorf("geocoder consulted despite table coordinates: %v", stub.queries)
	}
}

func TestResolveCountry_CaseInsensitive(t *testing.T) {
	r := NewResolver(nil, nil)
	place, err := r.ResolveCountry(context.Background(), "  fRaNcE ")
	if err != nil {
		t.Fatalf("ResolveCountry error = %v", err)
	}
	if place.Label != "Paris" {
		t.Errorf("label = %q, want Paris", place.Label)
	}
}

func TestResolveCountry_GeocodeFallbackForMissingCoords(t *testing.T) {
	stub := &stubGeocoder{place: Place{Lat: 11.57, Lng: 104.92}}
	r := NewResolver(stub, nil)

	place, err := r.ResolveCountry(context.Background(), "Cambodia")
	if err != nil {
		t.Fatalf("ResolveCountry(Cambodia) error = %v", err)
	}
	if len(stub.queries) != 1 || stub.queries[0] != "Phnom Penh, Cambodia" {
		t.Errorf("geocoder queries = %v, want [\"Phnom Penh, Cambodia\"]", stub.queries)
	}
	if place.Label != "Phnom Penh" {
		t.Errorf("label = %q, want Phnom Penh", place.Label)
	}
}

func TestResolveCountry_UnknownCountry(t *testing.T) {
	stub := &stubGeocoder{}
	r := NewResolver(stub, nil)

	place, err := r.ResolveCountry(context.Background(), "Atlantis")
	if place != nil || err == nil {
		t.Errorf("ResolveCountry(Atlantis) = (%v, %v), want (nil, reason)", place, err)
	}
	if len(stub.queries) != 0 {
		t.Errorf("unknown country should not hit the geocoder, got %v", stub.queries)
	}
}

func TestResolveCity_QueriesGeocoder(t *testing.T) {
	stub := &stubGeocoder{place: Place{Lat: 34.69, Lng: 135.50}}
	r := NewResolver(stub, nil)

	place, err := r.ResolveCity(context.Background(), "Osaka", "Japan")
	if err != nil {
		t.Fatalf("ResolveCity error = %v", err)
	}
	if len(stub.queries) != 1 || stub.queries[0] != "Osaka, Japan" {
		t.Errorf("geocoder queries = %v, want [\"Osaka, Japan\"]", stub.queries)
	}
	if place.Label != "Osaka" {
		t.Errorf("label = %q, want Osaka", place.Label)
	}
}

func TestResolveCity_GeocoderFailure(t *testing.T) {
	stub := &stubGeocoder{err: errors.New("provider timeout")}
	r := NewResolver(stub, nil)

	place, err := r.ResolveCity(context.Background(), "Osaka", "Japan")
	if place != nil || err == nil {
		t.Errorf("expected unavailable result with reason, got (%v, %v)", place, err)
	}
}

func TestResolveCity_NoGeocoderConfigured(t *testing.T) {
	r := NewResolver(nil, nil)
	place, err := r.ResolveCity(context.Background(), "Osaka", "Japan")
	if place != nil || err == nil {
		t.Errorf("expected unavailable result with reason, got (%v, %v)", place, err)
	}
}
