package format

import (
	"testing"
	"time"
)

func TestRelTime(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"under a minute", 59 * time.Second, "just now"},
		{"one minute", 90 * time.Second, "1 min ago"},
		{"minutes", 45 * time.Minute, "45 mins ago"},
		{"one hour", 1 * time.Hour, "1 hour ago"},
		{"hours", 5 * time.Hour, "5 hours ago"},
		{"one day", 24 * time.Hour, "1 day ago"},
		{"days", 6 * 24 * time.Hour, "6 days ago"},
		{"one week", 7 * 24 * time.Hour, "1 week ago"},
		{"weeks", 3 * 7 * 24 * time.Hour, "3 weeks ago"},
		{"one month", 35 * 24 * time.Hour, "1 month ago"},
		{"months", 11 * 30 * 24 * time.Hour, "11 months ago"},
		{"one year", 370 * 24 * time.Hour, "1 year ago"},
		{"years", 3 * 365 * 24 * time.Hour, "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelTime(now.Add(-tt.ago), now)
			if got != tt.want {
				t.Errorf("RelTime(-%v): got %q, want %q", tt.ago, got, tt.want)
			}
		})
	}
}

func TestRelTimeFuture(t *testing.T) {
	now := time.Now()
	if got := RelTime(now.Add(time.Hour), now); got != "just now" {
		t.Errorf("future timestamps clamp to just now: got %q", got)
	}
}

func TestRelTimeZero(t *testing.T) {
	if got := RelTime(time.Time{}, time.Now()); got != "" {
		t.Errorf("zero time: got %q, want empty", got)
	}
}
