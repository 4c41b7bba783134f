package itinerary

import (
	"fmt"
	"strings"
)

// placeholderClimate stands in for the climate block on the first pass of a
// two-pass generation, before any cities are known.
const placeholderClimate = "No climate data yet."

// defaultInterests is used when the request names no interests at all.
const defaultInterests = "general sightseeing"

// systemPrompt fixes the output structure the service expects from the model.
// The "Day N: Place" heading convention is what ExtractCities later relies on.
const systemPrompt = `You are an expert travel planner. Write practical, specific itineraries.

Structure every response as exactly three labeled sections, in this order:

Climate Summary
Day-by-Day Itinerary
Packing List

Rules:
- Each day heading must be "Day N: <place>", starting with the bare place name (e.g. "Day 1: Tokyo").
- Give one consolidated Packing List for the whole trip, never per-day lists.
- Base the Climate Summary and Packing List on the climate information provided.`

// buildPrompt assembles the user prompt for one generation pass.
func buildPrompt(req Request, climateBlock string) string {
	interests := defaultInterests
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	return fmt.Sprintf(`Plan a %d-day trip to %s, arriving on %s.
Traveler interests: %s.

Climate information:
%s`,
		req.Days,
		req.Country,
		req.ArrivalDate.Format("2006-01-02"),
		interests,
		climateBlock,
	)
}
