package util

import "time"

// Timestamps are stored as RFC3339 UTC strings so they sort lexicographically.

// NowRFC3339 returns the current time as an RFC3339 UTC string.
func NowRFC3339() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Today returns the current UTC calendar date as YYYY-MM-DD.
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}

// Yesterday returns the previous UTC calendar date as YYYY-MM-DD.
func Yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
}
