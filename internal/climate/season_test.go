package climate

import (
	"strings"
	"testing"
	"time"
)

func TestSeasonName_Partition(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.December, "winter"},
		{time.January, "winter"},
		{time.February, "winter"},
		{time.March, "spring"},
		{time.April, "spring"},
		{time.May, "spring"},
		{time.June, "summer"},
		{time.July, "summer"},
		{time.August, "summer"},
		{time.September, "autumn"},
		{time.October, "autumn"},
		{time.November, "autumn"},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			if got := SeasonName(tt.month); got != tt.want {
				t.Errorf("SeasonName(%v) = %q, want %q", tt.month, got, tt.want)
			}
		})
	}
}

func TestSeasonText_Template(t *testing.T) {
	got := SeasonText(time.July)
	want := "Generally summer conditions, with moderate temperatures and occasional rainfall."
	if got != want {
		t.Errorf("SeasonText(July) = %q, want %q", got, want)
	}
	if !strings.HasSuffix(got, "occasional rainfall.") {
		t.Errorf("seasonal sentence lost its template suffix: %q", got)
	}
}
