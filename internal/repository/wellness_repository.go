package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// WellnessRepository covers wellness goals and plans.
type WellnessRepository interface {
	CreateGoal(ctx context.Context, goal *models.WellnessGoal) (int64, error)
	GetGoalByID(ctx context.Context, id int64) (*models.WellnessGoal, error)
	ListGoals(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessGoal, error)
	ListAllGoalsByUserID(ctx context.Context, userID int64) ([]models.WellnessGoal, error)
	UpdateGoal(ctx context.Context, goal *models.WellnessGoal) error
	DeleteGoal(ctx context.Context, id int64) (bool, error)

	CreatePlan(ctx context.Context, plan *models.WellnessPlan) (int64, error)
	GetPlanByID(ctx context.Context, id int64) (*models.WellnessPlan, error)
	GetLatestPlanByUserID(ctx context.Context, userID int64) (*models.WellnessPlan, error)
	ListPlans(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessPlan, error)
	UpdatePlan(ctx context.Context, plan *models.WellnessPlan) error
	DeletePlan(ctx context.Context, id int64) (bool, error)
}

type sqlxWellnessRepository struct {
	db *sqlx.DB
}

// NewSQLXWellnessRepository creates a new wellness repository backed by sqlx.
func NewSQLXWellnessRepository(db *sqlx.DB) WellnessRepository {
	return &sqlxWellnessRepository{db: db}
}

func (r *sqlxWellnessRepository) CreateGoal(ctx context.Context, goal *models.WellnessGoal) (int64, error) {
	query := `INSERT INTO wellness_goals (user_id, goal_id, goal_title, selected_at)
	          VALUES (:user_id, :goal_id, :goal_title, :selected_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, goal)
	if err != nil {
		return 0, fmt.Errorf("failed to create wellness goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted wellness goal id: %w", err)
	}
	return id, nil
}

func (r *sqlxWellnessRepository) GetGoalByID(ctx context.Context, id int64) (*models.WellnessGoal, error) {
	var goal models.WellnessGoal
	err := GetExecutor(ctx, r.db).GetContext(ctx, &goal, `SELECT * FROM wellness_goals WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wellness goal by id: %w", err)
	}
	return &goal, nil
}

func (r *sqlxWellnessRepository) ListGoals(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessGoal, error) {
	goals := []models.WellnessGoal{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &goals,
			`SELECT * FROM wellness_goals WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &goals,
			`SELECT * FROM wellness_goals LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness goals: %w", err)
	}
	return goals, nil
}

func (r *sqlxWellnessRepository) ListAllGoalsByUserID(ctx context.Context, userID int64) ([]models.WellnessGoal, error) {
	goals := []models.WellnessGoal{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &goals,
		`SELECT * FROM wellness_goals WHERE user_id = ?`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness goals for user: %w", err)
	}
	return goals, nil
}

func (r *sqlxWellnessRepository) UpdateGoal(ctx context.Context, goal *models.WellnessGoal) error {
	query := `UPDATE wellness_goals SET goal_id = :goal_id, goal_title = :goal_title WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, goal)
	if err != nil {
		return fmt.Errorf("failed to update wellness goal: %w", err)
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

func (r *sqlxWellnessRepository) DeleteGoal(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM wellness_goals WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete wellness goal: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxWellnessRepository) CreatePlan(ctx context.Context, plan *models.WellnessPlan) (int64, error) {
	query := `INSERT INTO wellness_plans (user_id, plan_data, created_at, updated_at)
	          VALUES (:user_id, :plan_data, :created_at, :updated_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, plan)
	if err != nil {
		return 0, fmt.Errorf("failed to create wellness plan: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted wellness plan id: %w", err)
	}
	return id, nil
}

func (r *sqlxWellnessRepository) GetPlanByID(ctx context.Context, id int64) (*models.WellnessPlan, error) {
	var plan models.WellnessPlan
	err := GetExecutor(ctx, r.db).GetContext(ctx, &plan, `SELECT * FROM wellness_plans WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wellness plan by id: %w", err)
	}
	return &plan, nil
}

func (r *sqlxWellnessRepository) GetLatestPlanByUserID(ctx context.Context, userID int64) (*models.WellnessPlan, error) {
	var plan models.WellnessPlan
	err := GetExecutor(ctx, r.db).GetContext(ctx, &plan,
		`SELECT * FROM wellness_plans WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest wellness plan: %w", err)
	}
	return &plan, nil
}

func (r *sqlxWellnessRepository) ListPlans(ctx context.Context, userID *int64, limit, offset int) ([]models.WellnessPlan, error) {
	plans := []models.WellnessPlan{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &plans,
			`SELECT * FROM wellness_plans WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &plans,
			`SELECT * FROM wellness_plans LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list wellness plans: %w", err)
	}
	return plans, nil
}

func (r *sqlxWellnessRepository) UpdatePlan(ctx context.Context, plan *models.WellnessPlan) error {
	query := `UPDATE wellness_plans SET plan_data = :plan_data, updated_at = :updated_at WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, plan)
	if err != nil {
		return fmt.Errorf("failed to update wellness plan: %w", err)
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

func (r *sqlxWellnessRepository) DeletePlan(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM wellness_plans WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete wellness plan: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
