package service

import "time"

// Calendar dates travel through the system as YYYY-MM-DD strings in local
// time; these helpers are the only place that format is spelled out.
const dateLayout = "2006-01-02"

// FormatDate renders t as a YYYY-MM-DD calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// ParseDate reads a YYYY-MM-DD string as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
