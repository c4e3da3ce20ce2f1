package models

import "time"

// TimestampLayout is the fixed-width UTC layout used for every persisted
// timestamp, so lexical order of the strings matches chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a value produced by [FormatTimestamp]. RFC 3339
// values are accepted too, for rows written by other clients.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// Now returns the current time truncated to millisecond precision.
func Now() time.Time {
	return TruncateTimestamp(time.Now())
}

// TruncateTimestamp drops precision below one millisecond, which is all
// [TimestampLayout] keeps.
func TruncateTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
