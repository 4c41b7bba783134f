package geo

import "strings"

// countryInfo is one row of the static country reference table.
// Entries without coordinates still contribute a capital name, which the
// resolver geocodes as "<capital>, <country>".
type countryInfo struct {
	capital   string
	lat, lng  float64
	hasCoords bool
}

// countryTable covers the destinations the service is commonly asked about.
// Coordinates are capital-city approximations, good enough for a 7-day
// climate window.
var countryTable = map[string]countryInfo{
	"argentina":      {capital: "Buenos Aires", lat: -34.60, lng: -58.38, hasCoords: true},
	"australia":      {capital: "Canberra", lat: -35.28, lng: 149.13, hasCoords: true},
	"austria":        {capital: "Vienna", lat: 48.21, lng: 16.37, hasCoords: true},
	"belgium":        {capital: "Brussels", lat: 50.85, lng: 4.35, hasCoords: true},
	"brazil":         {capital: "Brasília", lat: -15.79, lng: -47.88, hasCoords: true},
	"canada":         {capital: "Ottawa", lat: 45.42, lng: -75.70, hasCoords: true},
	"chile":          {capital: "Santiago", lat: -33.45, lng: -70.67, hasCoords: true},
	"china":          {capital: "Beijing", lat: 39.90, lng: 116.40, hasCoords: true},
	"colombia":       {capital: "Bogotá", lat: 4.71, lng: -74.07, hasCoords: true},
	"croatia":        {capital: "Zagreb", lat: 45.81, lng: 15.98, hasCoords: true},
	"czechia":        {capital: "Prague", lat: 50.08, lng: 14.44, hasCoords: true},
	"czech republic": {capital: "Prague", lat: 50.08, lng: 14.44, hasCoords: true},
	"denmark":        {capital: "Copenhagen", lat: 55.68, lng: 12.57, hasCoords: true},
	"egypt":          {capital: "Cairo", lat: 30.04, lng: 31.24, hasCoords: true},
	"finland":        {capital: "Helsinki", lat: 60.17, lng: 24.94, hasCoords: true},
	"france":         {capital: "Paris", lat: 48.86, lng: 2.35, hasCoords: true},
	"germany":        {capital: "Berlin", lat: 52.52, lng: 13.41, hasCoords: true},
	"greece":         {capital: "Athens", lat: 37.98, lng: 23.73, hasCoords: true},
	"hungary":        {capital: "Budapest", lat: 47.50, lng: 19.04, hasCoords: true},
	"iceland":        {capital: "Reykjavík", lat: 64.15, lng: -21.94, hasCoords: true},
	"india":          {capital: "New Delhi", lat: 28.61, lng: 77.21, hasCoords: true},
	"indonesia":      {capital: "Jakarta", lat: -6.21, lng: 106.85, hasCoords: true},
	"ireland":        {capital: "Dublin", lat: 53.35, lng: -6.26, hasCoords: true},
	"israel":         {capital: "Jerusalem", lat: 31.77, lng: 35.21, hasCoords: true},
	"italy":          {capital: "Rome", lat: 41.90, lng: 12.50, hasCoords: true},
	"japan":          {capital: "Tokyo", lat: 35.68, lng: 139.69, hasCoords: true},
	"kenya":          {capital: "Nairobi", lat: -1.29, lng: 36.82, hasCoords: true},
	"malaysia":       {capital: "Kuala Lumpur", lat: 3.14, lng: 101.69, hasCoords: true},
	"mexico":         {capital: "Mexico City", lat: 19.43, lng: -99.13, hasCoords: true},
	"morocco":        {capital: "Rabat", lat: 34.02, lng: -6.84, hasCoords: true},
	"netherlands":    {capital: "Amsterdam", lat: 52.37, lng: 4.89, hasCoords: true},
	"new zealand":    {capital: "Wellington", lat: -41.29, lng: 174.78, hasCoords: true},
	"norway":         {capital: "Oslo", lat: 59.91, lng: 10.75, hasCoords: true},
	"peru":           {capital: "Lima", lat: -12.05, lng: -77.04, hasCoords: true},
	"philippines":    {capital: "Manila", lat: 14.60, lng: 120.98, hasCoords: true},
	"poland":         {capital: "Warsaw", lat: 52.23, lng: 21.01, hasCoords: true},
	"portugal":       {capital: "Lisbon", lat: 38.72, lng: -9.14, hasCoords: true},
	"singapore":      {capital: "Singapore", lat: 1.35, lng: 103.82, hasCoords: true},
	"south africa":   {capital: "Pretoria", lat: -25.75, lng: 28.19, hasCoords: true},
	"south korea":    {capital: "Seoul", lat: 37.57, lng: 126.98, hasCoords: true},
	"spain":          {capital: "Madrid", lat: 40.42, lng: -3.70, hasCoords: true},
	"sweden":         {capital: "Stockholm", lat: 59.33, lng: 18.07, hasCoords: true},
	"switzerland":    {capital: "Bern", lat: 46.95, lng: 7.45, hasCoords: true},
	"thailand":       {capital: "Bangkok", lat: 13.76, lng: 100.50, hasCoords: true},
	"turkey":         {capital: "Ankara", lat: 39.93, lng: 32.86, hasCoords: true},
	"united kingdom": {capital: "London", lat: 51.51, lng: -0.13, hasCoords: true},
	"united states":  {capital: "Washington, D.C.", lat: 38.91, lng: -77.04, hasCoords: true},
	"vietnam":        {capital: "Hanoi", lat: 21.03, lng: 105.85, hasCoords: true},

	// Capitals known, coordinates deferred to the geocoder.
	"bolivia":    {capital: "Sucre"},
	"cambodia":   {capital: "Phnom Penh"},
	"laos":       {capital: "Vientiane"},
	"montenegro": {capital: "Podgorica"},
	"sri lanka":  {capital: "Sri Jayawardenepura Kotte"},
}

func lookupCountry(name string) (countryInfo, bool) {
	info, ok := countryTable[strings.ToLower(strings.TrimSpace(name))]
	return info, ok
}
