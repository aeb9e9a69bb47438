package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// QuizRepository covers quiz responses and scored quiz results.
type QuizRepository interface {
	CreateResponse(ctx context.Context, resp *models.QuizResponse) (int64, error)
	GetResponseByID(ctx context.Context, id int64) (*models.QuizResponse, error)
	ListResponses(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResponse, error)
	UpdateResponse(ctx context.Context, resp *models.QuizResponse) error
	DeleteResponse(ctx context.Context, id int64) (bool, error)

	CreateResult(ctx context.Context, result *models.QuizResult) (int64, error)
	GetResultByID(ctx context.Context, id int64) (*models.QuizResult, error)
	GetLatestResultByUserID(ctx context.Context, userID int64) (*models.QuizResult, error)
	ListResults(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResult, error)
	UpdateResult(ctx context.Context, result *models.QuizResult) error
	DeleteResult(ctx context.Context, id int64) (bool, error)
}

type sqlxQuizRepository struct {
	db *sqlx.DB
}

// NewSQLXQuizRepository creates a new quiz repository backed by sqlx.
func NewSQLXQuizRepository(db *sqlx.DB) QuizRepository {
	return &sqlxQuizRepository{db: db}
}

func (r *sqlxQuizRepository) CreateResponse(ctx context.Context, resp *models.QuizResponse) (int64, error) {
	query := `INSERT INTO quiz_responses (user_id, question_id, answer_index, category, created_at)
	          VALUES (:user_id, :question_id, :answer_index, :category, :created_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, resp)
	if err != nil {
		return 0, fmt.Errorf("failed to create quiz response: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted quiz response id: %w", err)
	}
	return id, nil
}

func (r *sqlxQuizRepository) GetResponseByID(ctx context.Context, id int64) (*models.QuizResponse, error) {
	var resp models.QuizResponse
	err := GetExecutor(ctx, r.db).GetContext(ctx, &resp, `SELECT * FROM quiz_responses WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz response by id: %w", err)
	}
	return &resp, nil
}

func (r *sqlxQuizRepository) ListResponses(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResponse, error) {
	responses := []models.QuizResponse{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &responses,
			`SELECT * FROM quiz_responses WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &responses,
			`SELECT * FROM quiz_responses LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz responses: %w", err)
	}
	return responses, nil
}

func (r *sqlxQuizRepository) UpdateResponse(ctx context.Context, resp *models.QuizResponse) error {
	query := `UPDATE quiz_responses SET question_id = :question_id, answer_index = :answer_index,
	          category = :category WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, resp)
	if err != nil {
		return fmt.Errorf("failed to update quiz response: %w", err)
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

func (r *sqlxQuizRepository) DeleteResponse(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quiz_responses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz response: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxQuizRepository) CreateResult(ctx context.Context, result *models.QuizResult) (int64, error) {
	query := `INSERT INTO quiz_results (user_id, balance_score, mood_result, cognitive_score, physical_score, digital_score, created_at)
	          VALUES (:user_id, :balance_score, :mood_result, :cognitive_score, :physical_score, :digital_score, :created_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, result)
	if err != nil {
		return 0, fmt.Errorf("failed to create quiz result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted quiz result id: %w", err)
	}
	return id, nil
}

func (r *sqlxQuizRepository) GetResultByID(ctx context.Context, id int64) (*models.QuizResult, error) {
	var result models.QuizResult
	err := GetExecutor(ctx, r.db).GetContext(ctx, &result, `SELECT * FROM quiz_results WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz result by id: %w", err)
	}
	return &result, nil
}

func (r *sqlxQuizRepository) GetLatestResultByUserID(ctx context.Context, userID int64) (*models.QuizResult, error) {
	var result models.QuizResult
	err := GetExecutor(ctx, r.db).GetContext(ctx, &result,
		`SELECT * FROM quiz_results WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest quiz result: %w", err)
	}
	return &result, nil
}

func (r *sqlxQuizRepository) ListResults(ctx context.Context, userID *int64, limit, offset int) ([]models.QuizResult, error) {
	results := []models.QuizResult{}
	var err error
	if userID != nil {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &results,
			`SELECT * FROM quiz_results WHERE user_id = ? LIMIT ? OFFSET ?`, *userID, limit, offset)
	} else {
		err = GetExecutor(ctx, r.db).SelectContext(ctx, &results,
			`SELECT * FROM quiz_results LIMIT ? OFFSET ?`, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}
	return results, nil
}

func (r *sqlxQuizRepository) UpdateResult(ctx context.Context, result *models.QuizResult) error {
	query := `UPDATE quiz_results SET balance_score = :balance_score, mood_result = :mood_result,
	          cognitive_score = :cognitive_score, physical_score = :physical_score,
	          digital_score = :digital_score WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, result)
	if err != nil {
		return fmt.Errorf("failed to update quiz result: %w", err)
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

func (r *sqlxQuizRepository) DeleteResult(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM quiz_results WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete quiz result: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
