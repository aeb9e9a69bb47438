package domain

// MetricType classifies a UserMetric sample
type MetricType string

const (
	MetricScreenTime MetricType = "screen_time"
	MetricSleep      MetricType = "sleep"
	MetricActivity   MetricType = "activity"
	MetricMood       MetricType = "mood"
)

// IsValidMetricType reports whether s is a known metric type
func IsValidMetricType(s string) bool {
	switch MetricType(s) {
	case MetricScreenTime, MetricSleep, MetricActivity, MetricMood:
		return true
	}
	return false
}

// Theme is a user-settings display preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValidTheme reports whether s is a supported theme
func IsValidTheme(s string) bool {
	return Theme(s) == ThemeLight || Theme(s) == ThemeDark
}

// StreakUpdate is the outcome of applying one day of activity to a streak
type StreakUpdate struct {
	CurrentStreak    int
	LongestStreak    int
	LastActivityDate string
}

// AdvanceStreak applies an activity on activityDate (YYYY-MM-DD) to the
// current streak state. Consecutive days extend the streak, a gap resets
// it to 1, and a repeat on the same day leaves it unchanged. Dates compare
// lexicographically since they are ISO formatted.
func AdvanceStreak(current, longest int, lastActivityDate, activityDate, yesterday string) StreakUpdate {
	switch {
	case lastActivityDate == activityDate:
		// Already counted today.
	case lastActivityDate == yesterday:
		current++
	default:
		current = 1
	}
	if current > longest {
		longest = current
	}
	return StreakUpdate{
		CurrentStreak:    current,
		LongestStreak:    longest,
		LastActivityDate: activityDate,
	}
}
