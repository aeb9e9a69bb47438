package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// SettingsRepository manages per-user preference rows.
type SettingsRepository interface {
	CreateSettings(ctx context.Context, settings *models.UserSettings) (int64, error)
	GetSettingsByID(ctx context.Context, id int64) (*models.UserSettings, error)
	GetSettingsByUserID(ctx context.Context, userID int64) (*models.UserSettings, error)
	ListSettings(ctx context.Context, userID *int64, limit, offset int) ([]models.UserSettings, error)
	UpdateSettings(ctx context.Context, settings *models.UserSettings) error
	DeleteSettings(ctx context.Context, id int64) (bool, error)
}

type sqlxSettingsRepository struct {
	db *sqlx.DB
}

// NewSQLXSettingsRepository creates a new settings repository backed by sqlx.
func NewSQLXSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &sqlxSettingsRepository{db: db}
}

func (r *sqlxSettingsRepository) CreateSettings(ctx context.Context, settings *models.UserSettings) (int64, error) {
	query := `INSERT INTO user_settings (user_id, theme, notifications_enabled, sms_enabled, email_enabled, updated_at)
	          VALUES (:user_id, :theme, :notifications_enabled, :sms_enabled, :email_enabled, :updated_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, settings)
	if err != nil {
		return 0, fmt.Errorf("failed to create user settings: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user settings id: %w", err)
	}
	return id, nil
}

func (r *sqlxSettingsRepository) GetSettingsByID(ctx context.Context, id int64) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := GetExecutor(ctx, r.db).GetContext(ctx, &settings, `SELECT * FROM user_settings WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings by id: %w", err)
	}
	return &settings, nil
}

func (r *sqlxSettingsRepository) GetSettingsByUserID(ctx context.Context, userID int64) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := GetExecutor(ctx, r.db).GetContext(ctx, &settings,
		`SELECT * FROM user_settings WHERE user_id = ? LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings by user id: %w", err)
	}
	return &settings, nil
}

func (r *sqlxSettingsRepository) ListSettings(ctx context.Context, userID *int64, limit, offset int) ([]models.UserSettings, error) {
	settings := []models.UserSettings{}
	args := []interface{}{}
	where := ""
	if userID != nil {
		where = ` WHERE user_id = ?`
		args = append(args, *userID)
	}
	args = append(args, limit, offset)
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &settings,
		`SELECT * FROM user_settings`+where+` LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user settings: %w", err)
	}
	return settings, nil
}

func (r *sqlxSettingsRepository) UpdateSettings(ctx context.Context, settings *models.UserSettings) error {
	query := `UPDATE user_settings SET theme = :theme, notifications_enabled = :notifications_enabled,
	          sms_enabled = :sms_enabled, email_enabled = :email_enabled, updated_at = :updated_at
	          WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, settings)
	if err != nil {
		return fmt.Errorf("failed to update user settings: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *sqlxSettingsRepository) DeleteSettings(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM user_settings WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user settings: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
