package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// TrackingRepository covers the per-user progress tables: metric samples,
// badges, the streak counter, and daily tasks.
type TrackingRepository interface {
	CreateMetric(ctx context.Context, metric *models.UserMetric) (int64, error)
	GetMetricByID(ctx context.Context, id int64) (*models.UserMetric, error)
	ListMetrics(ctx context.Context, userID *int64, metricType *string, limit, offset int) ([]models.UserMetric, error)
	ListAllMetricsByUserID(ctx context.Context, userID int64) ([]models.UserMetric, error)
	UpdateMetric(ctx context.Context, metric *models.UserMetric) error
	DeleteMetric(ctx context.Context, id int64) (bool, error)

	CreateBadge(ctx context.Context, badge *models.Badge) (int64, error)
	GetBadgeByID(ctx context.Context, id int64) (*models.Badge, error)
	ListBadges(ctx context.Context, userID *int64, limit, offset int) ([]models.Badge, error)
	ListAllBadgesByUserID(ctx context.Context, userID int64) ([]models.Badge, error)
	CountBadgesByUserID(ctx context.Context, userID int64) (int, error)
	UpdateBadge(ctx context.Context, badge *models.Badge) error
	DeleteBadge(ctx context.Context, id int64) (bool, error)

	CreateStreak(ctx context.Context, streak *models.UserStreak) (int64, error)
	GetStreakByID(ctx context.Context, id int64) (*models.UserStreak, error)
	GetStreakByUserID(ctx context.Context, userID int64) (*models.UserStreak, error)
	ListStreaks(ctx context.Context, userID *int64, limit, offset int) ([]models.UserStreak, error)
	UpdateStreak(ctx context.Context, streak *models.UserStreak) error
	DeleteStreak(ctx context.Context, id int64) (bool, error)

	CreateTask(ctx context.Context, task *models.DailyTask) (int64, error)
	GetTaskByID(ctx context.Context, id int64) (*models.DailyTask, error)
	ListTasks(ctx context.Context, userID *int64, limit, offset int) ([]models.DailyTask, error)
	ListAllTasksByUserID(ctx context.Context, userID int64) ([]models.DailyTask, error)
	UpdateTask(ctx context.Context, task *models.DailyTask) error
	DeleteTask(ctx context.Context, id int64) (bool, error)
}

type sqlxTrackingRepository struct {
	db *sqlx.DB
}

// NewSQLXTrackingRepository creates a new tracking repository backed by sqlx.
func NewSQLXTrackingRepository(db *sqlx.DB) TrackingRepository {
	return &sqlxTrackingRepository{db: db}
}

func (r *sqlxTrackingRepository) CreateMetric(ctx context.Context, metric *models.UserMetric) (int64, error) {
	query := `INSERT INTO user_metrics (user_id, metric_type, value, date, created_at)
	          VALUES (:user_id, :metric_type, :value, :date, :created_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, metric)
	if err != nil {
		return 0, fmt.Errorf("failed to create user metric: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user metric id: %w", err)
	}
	return id, nil
}

func (r *sqlxTrackingRepository) GetMetricByID(ctx context.Context, id int64) (*models.UserMetric, error) {
	var metric models.UserMetric
	err := GetExecutor(ctx, r.db).GetContext(ctx, &metric, `SELECT * FROM user_metrics WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user metric by id: %w", err)
	}
	return &metric, nil
}

func (r *sqlxTrackingRepository) ListMetrics(ctx context.Context, userID *int64, metricType *string, limit, offset int) ([]models.UserMetric, error) {
	metrics := []models.UserMetric{}
	query := `SELECT * FROM user_metrics`
	args := []interface{}{}
	where := ""
	if userID != nil {
		where = ` WHERE user_id = ?`
		args = append(args, *userID)
	}
	if metricType != nil {
		if where == "" {
			where = ` WHERE metric_type = ?`
		} else {
			where += ` AND metric_type = ?`
		}
		args = append(args, *metricType)
	}
	args = append(args, limit, offset)
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &metrics, query+where+` LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list user metrics: %w", err)
	}
	return metrics, nil
}

func (r *sqlxTrackingRepository) ListAllMetricsByUserID(ctx context.Context, userID int64) ([]models.UserMetric, error) {
	metrics := []models.UserMetric{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &metrics,
		`SELECT * FROM user_metrics WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user metrics for user: %w", err)
	}
	return metrics, nil
}

func (r *sqlxTrackingRepository) UpdateMetric(ctx context.Context, metric *models.UserMetric) error {
	query := `UPDATE user_metrics SET metric_type = :metric_type, value = :value, date = :date WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, metric)
	if err != nil {
		return fmt.Errorf("failed to update user metric: %w", err)
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

func (r *sqlxTrackingRepository) DeleteMetric(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM user_metrics WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user metric: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxTrackingRepository) CreateBadge(ctx context.Context, badge *models.Badge) (int64, error) {
	query := `INSERT INTO badges (user_id, badge_id, badge_name, earned_at)
	          VALUES (:user_id, :badge_id, :badge_name, :earned_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, badge)
	if err != nil {
		return 0, fmt.Errorf("failed to create badge: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted badge id: %w", err)
	}
	return id, nil
}

func (r *sqlxTrackingRepository) GetBadgeByID(ctx context.Context, id int64) (*models.Badge, error) {
	var badge models.Badge
	err := GetExecutor(ctx, r.db).GetContext(ctx, &badge, `SELECT * FROM badges WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get badge by id: %w", err)
	}
	return &badge, nil
}

func (r *sqlxTrackingRepository) ListBadges(ctx context.Context, userID *int64, limit, offset int) ([]models.Badge, error) {
	badges := []models.Badge{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &badges,
			`SELECT * FROM badges WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &badges,
			`SELECT * FROM badges LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list badges: %w", err)
	}
	return badges, nil
}

func (r *sqlxTrackingRepository) ListAllBadgesByUserID(ctx context.Context, userID int64) ([]models.Badge, error) {
	badges := []models.Badge{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &badges,
		`SELECT * FROM badges WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list badges for user: %w", err)
	}
	return badges, nil
}

func (r *sqlxTrackingRepository) CountBadgesByUserID(ctx context.Context, userID int64) (int, error) {
	var count int
	err := GetExecutor(ctx, r.db).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM badges WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count badges: %w", err)
	}
	return count, nil
}

func (r *sqlxTrackingRepository) UpdateBadge(ctx context.Context, badge *models.Badge) error {
	query := `UPDATE badges SET badge_id = :badge_id, badge_name = :badge_name WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, badge)
	if err != nil {
		return fmt.Errorf("failed to update badge: %w", err)
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

func (r *sqlxTrackingRepository) DeleteBadge(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM badges WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete badge: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxTrackingRepository) CreateStreak(ctx context.Context, streak *models.UserStreak) (int64, error) {
	query := `INSERT INTO user_streaks (user_id, current_streak, longest_streak, last_activity_date, updated_at)
	          VALUES (:user_id, :current_streak, :longest_streak, :last_activity_date, :updated_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, streak)
	if err != nil {
		return 0, fmt.Errorf("failed to create user streak: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted user streak id: %w", err)
	}
	return id, nil
}

func (r *sqlxTrackingRepository) GetStreakByID(ctx context.Context, id int64) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := GetExecutor(ctx, r.db).GetContext(ctx, &streak, `SELECT * FROM user_streaks WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user streak by id: %w", err)
	}
	return &streak, nil
}

func (r *sqlxTrackingRepository) GetStreakByUserID(ctx context.Context, userID int64) (*models.UserStreak, error) {
	var streak models.UserStreak
	err := GetExecutor(ctx, r.db).GetContext(ctx, &streak,
		`SELECT * FROM user_streaks WHERE user_id = ? LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user streak by user id: %w", err)
	}
	return &streak, nil
}

func (r *sqlxTrackingRepository) ListStreaks(ctx context.Context, userID *int64, limit, offset int) ([]models.UserStreak, error) {
	streaks := []models.UserStreak{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &streaks,
			`SELECT * FROM user_streaks WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &streaks,
			`SELECT * FROM user_streaks LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list user streaks: %w", err)
	}
	return streaks, nil
}

func (r *sqlxTrackingRepository) UpdateStreak(ctx context.Context, streak *models.UserStreak) error {
	query := `UPDATE user_streaks SET current_streak = :current_streak, longest_streak = :longest_streak,
	          last_activity_date = :last_activity_date, updated_at = :updated_at WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, streak)
	if err != nil {
		return fmt.Errorf("failed to update user streak: %w", err)
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

func (r *sqlxTrackingRepository) DeleteStreak(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM user_streaks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user streak: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxTrackingRepository) CreateTask(ctx context.Context, task *models.DailyTask) (int64, error) {
	query := `INSERT INTO daily_tasks (user_id, task_name, task_time, completed, completion_date)
	          VALUES (:user_id, :task_name, :task_time, :completed, :completion_date)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, task)
	if err != nil {
		return 0, fmt.Errorf("failed to create daily task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted daily task id: %w", err)
	}
	return id, nil
}

func (r *sqlxTrackingRepository) GetTaskByID(ctx context.Context, id int64) (*models.DailyTask, error) {
	var task models.DailyTask
	err := GetExecutor(ctx, r.db).GetContext(ctx, &task, `SELECT * FROM daily_tasks WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily task by id: %w", err)
	}
	return &task, nil
}

func (r *sqlxTrackingRepository) ListTasks(ctx context.Context, userID *int64, limit, offset int) ([]models.DailyTask, error) {
	tasks := []models.DailyTask{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &tasks,
			`SELECT * FROM daily_tasks WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &tasks,
			`SELECT * FROM daily_tasks LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list daily tasks: %w", err)
	}
	return tasks, nil
}

func (r *sqlxTrackingRepository) ListAllTasksByUserID(ctx context.Context, userID int64) ([]models.DailyTask, error) {
	tasks := []models.DailyTask{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &tasks,
		`SELECT * FROM daily_tasks WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily tasks for user: %w", err)
	}
	return tasks, nil
}

func (r *sqlxTrackingRepository) UpdateTask(ctx context.Context, task *models.DailyTask) error {
	query := `UPDATE daily_tasks SET task_name = :task_name, task_time = :task_time,
	          completed = :completed, completion_date = :completion_date WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, task)
	if err != nil {
		return fmt.Errorf("failed to update daily task: %w", err)
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

func (r *sqlxTrackingRepository) DeleteTask(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM daily_tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete daily task: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
