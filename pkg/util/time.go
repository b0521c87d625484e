package util

import (
	"fmt"
	"strconv"
	"strings"
)

// Service-day clock strings ("HH:MM:SS") can overflow past midnight, so a
// departure at 01:15 on a night service is written "25:15:00". All parsing is
// tolerant: malformed components degrade to zero instead of failing.

func TimeToSeconds(timeValue string) int {
	parts := strings.Split(timeValue, ":")

	var hours, minutes, seconds int

	if len(parts) > 0 {
		hours, _ = strconv.Atoi(parts[0])
	}
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}
	if len(parts) > 2 {
		seconds, _ = strconv.Atoi(parts[2])
	}

	return hours*3600 + minutes*60 + seconds
}

// SecondsToTimeParts decomposes an amount of seconds into clock components.
// The sign is dropped; callers track direction separately.
func SecondsToTimeParts(totalSeconds int) (hours int, minutes int, seconds int) {
	if totalSeconds < 0 {
		totalSeconds = -totalSeconds
	}

	hours = totalSeconds / 3600
	minutes = (totalSeconds % 3600) / 60
	seconds = totalSeconds % 60

	return hours, minutes, seconds
}

func SecondsToTime(totalSeconds int) string {
	hours, minutes, seconds := SecondsToTimeParts(totalSeconds)

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// NormalTime renders a possibly overflowing service-day time in civil 24h
// format, so "25:15:00" becomes "01:15:00".
func NormalTime(timeValue string) string {
	seconds := TimeToSeconds(timeValue)

	if seconds >= 24*3600 {
		seconds -= 24 * 3600
	}

	return SecondsToTime(seconds)
}
