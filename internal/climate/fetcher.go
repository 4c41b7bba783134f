package climate

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tripsmith/internal/geo"
)

// referenceYear anchors every climate window. The archive API serves complete
// historical data only; the request's month/day is treated as a recurring
// seasonal marker on this year, never as an absolute date.
const referenceYear = 2022

// windowDays is the length of the sampled climate window.
const windowDays = 7

// UnavailableText is the sentinel embedded in prompts when no coordinates
// could be resolved.
const UnavailableText = "Climate data unavailable"

// Source says where a summary's text came from.
type Source int

const (
	// SourceHistorical — numeric averages from the weather archive.
	SourceHistorical Source = iota
	// SourceSeasonal — generic month-based seasonal sentence.
	SourceSeasonal
	// SourceUnavailable — no coordinates, nothing to say.
	SourceUnavailable
)

// Summary is the reduced climate result for one place. The numeric fields are
// only meaningful for SourceHistorical; Reason records why a numeric summary
// was not produced so the fallback can still be logged.
type Summary struct {
	Label    string
	Source   Source
	AvgTempC float64
	RainMM   float64
	Season   string
	Reason   error
}

// Text renders the summary for embedding into a prompt.
func (s Summary) Text() string {
	switch s.Source {
	case SourceHistorical:
		return fmt.Sprintf("Avg temp: %.1f°C, Rainfall: %.1f mm", s.AvgTempC, s.RainMM)
	case SourceSeasonal:
		return s.Season
	default:
		return UnavailableText
	}
}

// CityLine renders the summary as a single labeled line for the per-city
// climate block of a refined prompt.
func (s Summary) CityLine() string {
	switch s.Source {
	case SourceHistorical:
		return fmt.Sprintf("%s climate: Avg temp %.1f°C, %.1f mm rain", s.Label, s.AvgTempC, s.RainMM)
	case SourceSeasonal:
		return fmt.Sprintf("%s: %s", s.Label, s.Season)
	default:
		return fmt.Sprintf("%s: %s", s.Label, UnavailableText)
	}
}

// History is one place's hourly series over a date window.
type History struct {
	TemperatureC    []float64
	PrecipitationMM []float64
}

// Provider abstracts the weather archive (Open-Meteo in production).
type Provider interface {
	HourlyHistory(ctx context.Context, lat, lng float64, start, end time.Time) (History, error)
}

// Fetcher reduces archive series into prompt-ready climate summaries.
type Fetcher struct {
	provider Provider
	log      *zap.Logger
}

// NewFetcher creates a Fetcher. provider may be nil; every lookup then
// degrades to the seasonal sentence.
func NewFetcher(provider Provider, log *zap.Logger) *Fetcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{provider: provider, log: log}
}

// Summarize fetches and reduces the climate window for place around date.
// A nil place short-circuits to SourceUnavailable without touching the
// provider. Any provider failure or incomplete series degrades to the
// seasonal sentence for date's month.
func (f *Fetcher) Summarize(ctx context.Context, place *geo.Place, date time.Time) Summary {
	if place == nil {
		return Summary{Source: SourceUnavailable}
	}

	start, end := window(date)
	hist, err := f.fetch(ctx, place, start, end)
	if err != nil {
		f.log.Warn("climate lookup fell back to seasonal text",
			zap.String("place", place.Label),
			zap.Error(err))
		return Summary{
			Label:  place.Label,
			Source: SourceSeasonal,
			Season: SeasonText(date.Month()),
			Reason: err,
		}
	}

	var tempSum float64
	for _, v := range hist.TemperatureC {
		tempSum += v
	}
	var rainSum float64
	for _, v := range hist.PrecipitationMM {
		rainSum += v
	}

	return Summary{
		Label:    place.Label,
		Source:   SourceHistorical,
		AvgTempC: tempSum / float64(len(hist.TemperatureC)),
		RainMM:   rainSum,
	}
}

func (f *Fetcher) fetch(ctx context.Context, place *geo.Place, start, end time.Time) (History, error) {
	if f.provider == nil {
		return History{}, fmt.Errorf("no weather provider configured")
	}
	hist, err := f.provider.HourlyHistory(ctx, place.Lat, place.Lng, start, end)
	if err != nil {
		return History{}, err
	}
	// Partial data counts as failure: both series must be present for a
	// numeric summary.
	if len(hist.TemperatureC) == 0 || len(hist.PrecipitationMM) == 0 {
		return History{}, fmt.Errorf("incomplete series: %d temperature, %d precipitation samples",
			len(hist.TemperatureC), len(hist.PrecipitationMM))
	}
	return hist, nil
}

// window maps date's month/day onto the reference year and spans seven
// calendar days from there.
func window(date time.Time) (start, end time.Time) {
	start = time.Date(referenceYear, date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 0, windowDays-1)
	return start, end
}
