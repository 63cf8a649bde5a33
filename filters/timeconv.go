package filters

import (
	"fmt"
	"strconv"
	"strings"
)

// To24Hour converts a 12-hour display value ("9:00 a.m.") into the 24-hour wire
// form ("09:00") following the civil rule: 12:MM a.m. becomes 00:MM, 12:MM p.m.
// stays 12:MM, and any other p.m. hour gains 12.
func To24Hour(display string) string {
	timePart, suffix, _ := strings.Cut(display, " ")
	h, m := splitClock(timePart)

	switch {
	case strings.HasPrefix(suffix, "a") && h == 12:
		h = 0
	case strings.HasPrefix(suffix, "p") && h != 12:
		h += 12
	}

	return fmt.Sprintf("%02d:%02d", h, m)
}

// From24Hour converts a 24-hour wire value ("21:30") into the 12-hour display
// form ("9:30 p.m."). Round-trips with To24Hour for every representable value.
func From24Hour(wire string) string {
	h, m := splitClock(wire)

	suffix := "a.m."
	if h >= 12 {
		suffix = "p.m."
	}

	displayH := h % 12
	if displayH == 0 {
		displayH = 12
	}

	return fmt.Sprintf("%d:%02d %s", displayH, m, suffix)
}

// MinuteOfDay parses an "HH:MM" wire value into minutes since midnight.
// Unparseable components read as 0.
func MinuteOfDay(wire string) int {
	h, m := splitClock(wire)
	return h*60 + m
}

func splitClock(token string) (hours, minutes int) {
	h, m, _ := strings.Cut(token, ":")
	hours, _ = strconv.Atoi(h)
	minutes, _ = strconv.Atoi(m)
	return hours, minutes
}
