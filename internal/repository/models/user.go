package models

import "database/sql"

// User is the identity anchor; every other per-user row references it.
type User struct {
	ID        int64          `db:"id"`
	Email     string         `db:"email"`
	Name      string         `db:"name"`
	AvatarURL sql.NullString `db:"avatar_url"`
	CreatedAt string         `db:"created_at"`
	UpdatedAt string         `db:"updated_at"`
}

// UserSettings is a per-user preference bag.
type UserSettings struct {
	ID                   int64  `db:"id"`
	UserID               int64  `db:"user_id"`
	Theme                string `db:"theme"`
	NotificationsEnabled bool   `db:"notifications_enabled"`
	SMSEnabled           bool   `db:"sms_enabled"`
	EmailEnabled         bool   `db:"email_enabled"`
	UpdatedAt            string `db:"updated_at"`
}
