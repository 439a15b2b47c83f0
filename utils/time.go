package utils

import "time"

// FormatDateTime renders a schedule the way the portal displays it,
// e.g. "Jun 14, 2025, 2:30 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}

// FormatDate renders a date-only value, e.g. for birth dates.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
