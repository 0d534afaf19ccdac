// Package timeformat converts second counts into display representations.
package timeformat

import "fmt"

// ToClock splits a second count into hour, minute and second components.
// Negative inputs are treated as zero; hours grow without bound past 24h.
func ToClock(total int) (hours, minutes, seconds int) {
	if total < 0 {
		total = 0
	}
	hours = total / 3600
	minutes = (total % 3600) / 60
	seconds = total % 60
	return hours, minutes, seconds
}

// LabelHM formats a second count as H:MM, without zero-padding the hours.
func LabelHM(total int) string {
	hours, minutes, _ := ToClock(total)
	return fmt.Sprintf("%d:%02d", hours, minutes)
}

// LabelHMS formats a second count as HH:MM:SS.
func LabelHMS(total int) string {
	hours, minutes, seconds := ToClock(total)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// SessionLabel formats a second count the way the session clock shows it,
// e.g. "01h 00m 00".
func SessionLabel(total int) string {
	hours, minutes, seconds := ToClock(total)
	return fmt.Sprintf("%02dh %02dm %02d", hours, minutes, seconds)
}
