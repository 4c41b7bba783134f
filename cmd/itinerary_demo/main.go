package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"tripsmith/internal/ai"
	"tripsmith/internal/climate"
	"tripsmith/internal/geo"
	"tripsmith/internal/itinerary"
)

func main() {
	country := flag.String("country", "Japan", "destination country")
	days := flag.Int("days", 3, "trip length in days")
	arrival := flag.String("arrival", "2024-04-10", "arrival date (YYYY-MM-DD)")
	refine := flag.Bool("refine", false, "use the two-pass draft-then-refine flow")
	flag.Parse()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	arrivalDate, err := time.Parse("2006-01-02", *arrival)
	if err != nil {
		log.Fatalf("invalid arrival date: %v", err)
	}

	ctx := context.Background()
	gen, err := ai.NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Fatalf("failed to initialize AI provider: %v", err)
	}
	defer gen.Close()

	var geocoder geo.Geocoder
	if mapsKey := os.Getenv("MAPS_API_KEY"); mapsKey != "" {
		g, err := geo.NewGoogleGeocoder(mapsKey)
		if err != nil {
			log.Fatalf("failed to initialize geocoder: %v", err)
		}
		geocoder = g
	}

	logger, _ := zap.NewDevelopment()
	composer := itinerary.NewComposer(gen,
		geo.NewResolver(geocoder, logger),
		climate.NewFetcher(climate.NewOpenMeteoClient(""), logger),
		logger)

	req := itinerary.Request{
		Country:     *country,
		Days:        *days,
		Interests:   flag.Args(),
		ArrivalDate: arrivalDate,
	}

	var text string
	if *refine {
		text, err = composer.GenerateRefined(ctx, req)
	} else {
		text, err = composer.Generate(ctx, req)
	}
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}

	fmt.Println(text)
}
