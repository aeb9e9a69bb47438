package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceStreak(t *testing.T) {
	const (
		today     = "2025-03-12"
		yesterday = "2025-03-11"
	)

	t.Run("consecutive day extends the streak", func(t *testing.T) {
		got := AdvanceStreak(4, 6, yesterday, today, yesterday)

		assert.Equal(t, 4+1, got.CurrentStreak)
		assert.Equal(t, 6, got.LongestStreak)
		assert.Equal(t, today, got.LastActivityDate)
	})

	t.Run("extending past the record raises the longest streak", func(t *testing.T) {
		got := AdvanceStreak(6, 6, yesterday, today, yesterday)

		assert.Equal(t, 7, got.CurrentStreak)
		assert.Equal(t, 7, got.LongestStreak)
	})

	t.Run("repeat activity on the same day is a no-op", func(t *testing.T) {
		got := AdvanceStreak(3, 5, today, today, yesterday)

		assert.Equal(t, 3, got.CurrentStreak)
		assert.Equal(t, 5, got.LongestStreak)
		assert.Equal(t, today, got.LastActivityDate)
	})

	t.Run("a gap resets the streak to one", func(t *testing.T) {
		got := AdvanceStreak(9, 9, "2025-03-01", today, yesterday)

		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, 9, got.LongestStreak)
		assert.Equal(t, today, got.LastActivityDate)
	})

	t.Run("first ever activity starts at one", func(t *testing.T) {
		got := AdvanceStreak(0, 0, "", today, yesterday)

		assert.Equal(t, 1, got.CurrentStreak)
		assert.Equal(t, 1, got.LongestStreak)
	})
}

func TestIsValidMetricType(t *testing.T) {
	assert.True(t, IsValidMetricType("screen_time"))
	assert.True(t, IsValidMetricType("sleep"))
	assert.True(t, IsValidMetricType("activity"))
	assert.True(t, IsValidMetricType("mood"))
	assert.False(t, IsValidMetricType("steps"))
	assert.False(t, IsValidMetricType(""))
}

func TestIsValidTheme(t *testing.T) {
	assert.True(t, IsValidTheme("light"))
	assert.True(t, IsValidTheme("dark"))
	assert.False(t, IsValidTheme("Light"))
	assert.False(t, IsValidTheme("solarized"))
}
