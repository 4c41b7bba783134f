package itinerary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripsmith/internal/ai"
	"tripsmith/internal/climate"
	"tripsmith/internal/geo"
)

// Request describes one itinerary to generate. Entities are request-scoped;
// nothing here is mutated after creation.
type Request struct {
	Country     string
	Days        int
	Interests   []string
	ArrivalDate time.Time
}

// Composer orchestrates place resolution, climate lookups and model
// generation passes. All failures below the completion call degrade to
// fallback climate text; only a completion failure is returned to the caller.
type Composer struct {
	gen     ai.TextGenerator
	places  *geo.Resolver
	climate *climate.Fetcher
	log     *zap.Logger
}

// NewComposer creates a Composer with explicit dependencies so tests can
// substitute doubles for every collaborator.
func NewComposer(gen ai.TextGenerator, places *geo.Resolver, fetcher *climate.Fetcher, log *zap.Logger) *Composer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Composer{gen: gen, places: places, climate: fetcher, log: log}
}

// Generate runs the single-pass flow: country-level climate, one completion.
func (c *Composer) Generate(ctx context.Context, req Request) (string, error) {
	place, err := c.places.ResolveCountry(ctx, req.Country)
	if err != nil {
		c.log.Info("country climate unavailable",
			zap.String("country", req.Country),
			zap.Error(err))
	}

	summary := c.climate.Summarize(ctx, place, req.ArrivalDate)
	block := summary.Text()
	if summary.Source != climate.SourceUnavailable && summary.Label != "" {
		block = fmt.Sprintf("%s (%s): %s", req.Country, summary.Label, summary.Text())
	}

	text, err := c.gen.Generate(ctx, systemPrompt, buildPrompt(req, block))
	if err != nil {
		return "", fmt.Errorf("itinerary generation failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// GenerateRefined runs the two-pass flow: a draft with a placeholder climate
// block, city extraction from the draft, sequential per-city climate lookups,
// then a second completion with the composite block. The draft itself is
// discarded; only its place names survive.
func (c *Composer) GenerateRefined(ctx context.Context, req Request) (string, error) {
	draft, err := c.gen.Generate(ctx, systemPrompt, buildPrompt(req, placeholderClimate))
	if err != nil {
		return "", fmt.Errorf("draft generation failed: %w", err)
	}

	cities := ExtractCities(draft, req.Country)
	if len(cities) == 0 {
		c.log.Info("no cities extracted from draft", zap.String("country", req.Country))
	}

	// One line per extracted city, fetched one at a time. Unresolvable
	// cities keep their line with the unavailable sentinel.
	var lines []string
	for _, city := range cities {
		place, rerr := c.places.ResolveCity(ctx, city, req.Country)
		if rerr != nil {
			c.log.Info("city climate unavailable",
				zap.String("city", city),
				zap.Error(rerr))
		}
		summary := c.climate.Summarize(ctx, place, req.ArrivalDate)
		if summary.Source == climate.SourceUnavailable {
			summary.Label = city
		}
		lines = append(lines, summary.CityLine())
	}

	final, err := c.gen.Generate(ctx, systemPrompt, buildPrompt(req, strings.Join(lines, "\n")))
	if err != nil {
		return "", fmt.Errorf("itinerary generation failed: %w", err)
	}
	return strings.TrimSpace(final), nil
}
