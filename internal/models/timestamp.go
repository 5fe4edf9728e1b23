package models

import "time"

// FormatTimestamp время в UTC в формате ISO 8601 с суффиксом Z.
// Доли секунды выводятся шестью знаками и только если они есть.
func FormatTimestamp(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format("2006-01-02T15:04:05") + "Z"
	}
	return t.Format("2006-01-02T15:04:05.000000") + "Z"
}
