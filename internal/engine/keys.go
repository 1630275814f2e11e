package engine

import "time"

const keyLayout = "2006-01-02"

// DayKey returns the canonical key for the local calendar day containing t.
// Two instants map to the same key iff they fall on the same day.
func DayKey(t time.Time) string {
	return t.Format(keyLayout)
}

// WeekKey returns the canonical key for the ISO week containing t: the date
// of the Monday starting that week. Sunday counts as offset 6 from Monday.
func WeekKey(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return monday.Format(keyLayout)
}
