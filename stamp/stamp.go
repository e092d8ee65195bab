// Package stamp converts between time values and epoch millisecond stamps.
package stamp

import "time"

// Now is the current time in milliseconds since the Unix epoch.
func Now() int64 {
	return time.Now().UnixMilli()
}

func FromTime(t time.Time) int64 {
	return t.UnixMilli()
}

// FromDate stamps midnight at the start of the given day in loc. A nil loc
// means time.Local.
func FromDate(year int, month time.Month, day int, loc *time.Location) int64 {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc).UnixMilli()
}

// FromDuration expresses d in whole milliseconds, truncating toward zero.
func FromDuration(d time.Duration) int64 {
	return d.Milliseconds()
}

// Unstamp turns a stamp back into a time in UTC.
func Unstamp(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
