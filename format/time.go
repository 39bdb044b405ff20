// Adapted from https://raw.githubusercontent.com/dustin/go-humanize/master/times.go

package format

import (
	"fmt"
	"sort"
	"time"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

type magnitude struct {
	ceiling time.Duration
	format  string
	unit    string
	divBy   time.Duration
}

var magnitudes = []magnitude{
	{time.Minute, "just now", "", 0},
	{time.Hour, "%d %s ago", "min", time.Minute},
	{day, "%d %s ago", "hour", time.Hour},
	{week, "%d %s ago", "day", day},
	{4 * week, "%d %s ago", "week", week},
	{year, "%d %s ago", "month", month},
	{1 << 62, "%d %s ago", "year", year},
}

// RelTime formats a timestamp the way the feed displays it: "just now",
// then minutes, hours, days, weeks, months, years.
func RelTime(then, now time.Time) string {
	if then.IsZero() {
		return ""
	}

	diff := now.Sub(then)
	if diff < 0 {
		diff = 0
	}

	n := sort.Search(len(magnitudes), func(i int) bool {
		return magnitudes[i].ceiling > diff
	})
	if n >= len(magnitudes) {
		n = len(magnitudes) - 1
	}
	mag := magnitudes[n]

	if mag.divBy == 0 {
		return mag.format
	}

	qty := int(diff / mag.divBy)
	if qty < 1 {
		qty = 1
	}

	unit := mag.unit
	if qty != 1 {
		unit += "s"
	}
	return fmt.Sprintf(mag.format, qty, unit)
}

// Time formats against the current clock.
func Time(then time.Time) string {
	return RelTime(then, time.Now())
}
