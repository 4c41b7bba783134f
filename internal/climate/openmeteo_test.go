package climate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestOpenMeteoClient_ParsesHourlySeries(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"start_date": q.Get("start_date"),
			"end_date":   q.Get("end_date"),
			"hourly":     q.Get("hourly"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hourly":{"temperature_2m":[17.5,18.5],"precipitation":[0.0,2.5]}}`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL)
	hist, err := c.HourlyHistory(context.Background(), 35.68, 139.69,
		time.Date(2022, 4, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 4, 16, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("HourlyHistory error = %v", err)
	}

	if gotQuery["start_date"] != "2022-04-10" || gotQuery["end_date"] != "2022-04-16" {
		t.Errorf("date range = %s..%s, want 2022-04-10..2022-04-16",
			gotQuery["start_date"], gotQuery["end_date"])
	}
	if gotQuery["hourly"] != "temperature_2m,precipitation" {
		t.Errorf("hourly = %q", gotQuery["hourly"])
	}
	if len(hist.TemperatureC) != 2 || len(hist.PrecipitationMM) != 2 {
		t.Errorf("series lengths = %d/%d, want 2/2", len(hist.TemperatureC), len(hist.PrecipitationMM))
	}
	if hist.TemperatureC[1] != 18.5 || hist.PrecipitationMM[1] != 2.5 {
		t.Errorf("unexpected sample values: %v %v", hist.TemperatureC, hist.PrecipitationMM)
	}
}

func TestOpenMeteoClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"reason":"out of range"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL)
	_, err := c.HourlyHistory(context.Background(), 0, 0,
		time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 1, 7, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestOpenMeteoClient_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	c := NewOpenMeteoClient(srv.URL)
	_, err := c.HourlyHistory(context.Background(), 0, 0,
		time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2022, 1, 7, 0, 0, 0, 0, time.UTC))
	if err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
