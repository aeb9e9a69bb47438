package models

import "database/sql"

// UserMetric is a single measurement sample. Multiple rows per user per
// day and type are permitted.
type UserMetric struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	MetricType string `db:"metric_type"`
	Value      string `db:"value"`
	Date       string `db:"date"`
	CreatedAt  string `db:"created_at"`
}

// Badge is an earned achievement.
type Badge struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	BadgeID   string `db:"badge_id"`
	BadgeName string `db:"badge_name"`
	EarnedAt  string `db:"earned_at"`
}

// UserStreak is the per-user rolling activity counter. A unique index on
// user_id keeps it to one row per user.
type UserStreak struct {
	ID               int64          `db:"id"`
	UserID           int64          `db:"user_id"`
	CurrentStreak    int            `db:"current_streak"`
	LongestStreak    int            `db:"longest_streak"`
	LastActivityDate sql.NullString `db:"last_activity_date"`
	UpdatedAt        string         `db:"updated_at"`
}

// DailyTask is a scheduled task instance.
type DailyTask struct {
	ID             int64          `db:"id"`
	UserID         int64          `db:"user_id"`
	TaskName       string         `db:"task_name"`
	TaskTime       string         `db:"task_time"`
	Completed      bool           `db:"completed"`
	CompletionDate sql.NullString `db:"completion_date"`
}
