// Package schedule places appointments on a vertical day grid and computes
// the position of the live "now" marker.
package schedule

import (
	"strconv"
	"strings"
	"time"
)

// Window is the visible part of the day, [StartHour, EndHour), rendered at
// PixelsPerMinute. NudgePx is a constant added to every visible offset for
// visual alignment of the rendered grid.
type Window struct {
	StartHour       int     `json:"start_hour"`
	EndHour         int     `json:"end_hour"`
	PixelsPerMinute float64 `json:"px_per_minute"`
	NudgePx         float64 `json:"nudge_px"`
}

// Layout is where a block lands on the grid. When Visible is false the
// caller must not render the block and TopOffsetPx is 0.
type Layout struct {
	TopOffsetPx float64 `json:"top_offset_px"`
	Visible     bool    `json:"visible"`
}

// Contains reports whether hour falls inside the window.
func (w Window) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// Offset converts a time of day into a pixel position, ignoring visibility.
func (w Window) Offset(hour, minute int) float64 {
	minutesFromStart := (hour-w.StartHour)*60 + minute
	return float64(minutesFromStart)*w.PixelsPerMinute + w.NudgePx
}

// Height is the pixel height of the whole window.
func (w Window) Height() float64 {
	if w.EndHour <= w.StartHour {
		return 0
	}
	return float64((w.EndHour-w.StartHour)*60) * w.PixelsPerMinute
}

// ParseTimeLabel reads "HH:MM" or "HH:MM AM|PM" into a 24-hour clock. A
// trailing seconds component is ignored and so is any modifier other than
// AM or PM.
func ParseTimeLabel(label string) (hour, minute int, ok bool) {
	clock, modifier, _ := strings.Cut(strings.TrimSpace(label), " ")

	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	switch strings.ToUpper(strings.TrimSpace(modifier)) {
	case "PM":
		if hour < 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	if hour < 0 || hour > 23 {
		return 0, 0, false
	}
	return hour, minute, true
}

// MinuteOfDay returns the normalized minute of the day for a time label.
func MinuteOfDay(label string) (int, bool) {
	hour, minute, ok := ParseTimeLabel(label)
	if !ok {
		return 0, false
	}
	return hour*60 + minute, true
}

// FormatMinuteOfDay renders a minute of the day as "HH:MM".
func FormatMinuteOfDay(m int) string {
	return time.Date(0, 1, 1, m/60, m%60, 0, 0, time.UTC).Format("15:04")
}

// PositionFromTime places a time label inside w. Labels that do not parse or
// fall outside the window are not visible.
func PositionFromTime(label string, w Window) Layout {
	hour, minute, ok := ParseTimeLabel(label)
	if !ok || !w.Contains(hour) {
		return Layout{}
	}
	return Layout{TopOffsetPx: w.Offset(hour, minute), Visible: true}
}

// CurrentTimeOffset returns the position of the live marker. The marker is
// only drawn on the day being viewed, and only while now is inside w.
func CurrentTimeOffset(now, selectedDate, today time.Time, w Window) (float64, bool) {
	if !SameDay(selectedDate, today) {
		return 0, false
	}
	if !w.Contains(now.Hour()) {
		return 0, false
	}
	return w.Offset(now.Hour(), now.Minute()), true
}

// SameDay compares calendar dates as seen in each value's own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
