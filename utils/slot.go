package utils

import "time"

// Slot identifiers are strings end to end: dates as "15_06_2025" keys and
// times as "10:00 AM" labels, matching what the booking clients send.
const (
	DateKeyLayout  = "02_01_2006"
	SlotTimeLayout = "3:04 PM"
)

// FormatDateKey renders a time as a slot date key.
func FormatDateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a slot date key back into a time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}

// ValidDateKey reports whether key is a well-formed slot date.
func ValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// ValidSlotTime reports whether s is a well-formed slot time label.
func ValidSlotTime(s string) bool {
	_, err := time.Parse(SlotTimeLayout, s)
	return err == nil
}
