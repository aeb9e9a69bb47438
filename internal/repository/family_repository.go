package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// FamilyRepository manages family group memberships.
type FamilyRepository interface {
	CreateMember(ctx context.Context, member *models.FamilyMember) (int64, error)
	GetMemberByID(ctx context.Context, id int64) (*models.FamilyMember, error)
	ListMembers(ctx context.Context, groupID *string, userID *int64, limit, offset int) ([]models.FamilyMember, error)
	ListMembersByGroupID(ctx context.Context, groupID string) ([]models.FamilyMember, error)
	UpdateMember(ctx context.Context, member *models.FamilyMember) error
	DeleteMember(ctx context.Context, id int64) (bool, error)
}

type sqlxFamilyRepository struct {
	db *sqlx.DB
}

// NewSQLXFamilyRepository creates a new family repository backed by sqlx.
func NewSQLXFamilyRepository(db *sqlx.DB) FamilyRepository {
	return &sqlxFamilyRepository{db: db}
}

func (r *sqlxFamilyRepository) CreateMember(ctx context.Context, member *models.FamilyMember) (int64, error) {
	query := `INSERT INTO family_members (family_group_id, user_id, joined_at)
	          VALUES (:family_group_id, :user_id, :joined_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, member)
	if err != nil {
		return 0, fmt.Errorf("failed to create family member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted family member id: %w", err)
	}
	return id, nil
}

func (r *sqlxFamilyRepository) GetMemberByID(ctx context.Context, id int64) (*models.FamilyMember, error) {
	var member models.FamilyMember
	err := GetExecutor(ctx, r.db).GetContext(ctx, &member, `SELECT * FROM family_members WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get family member by id: %w", err)
	}
	return &member, nil
}

func (r *sqlxFamilyRepository) ListMembers(ctx context.Context, groupID *string, userID *int64, limit, offset int) ([]models.FamilyMember, error) {
	members := []models.FamilyMember{}
	args := []interface{}{}
	where := ""
	if groupID != nil {
		where = ` WHERE family_group_id = ?`
		args = append(args, *groupID)
	}
	if userID != nil {
		if where == "" {
			where = ` WHERE user_id = ?`
		} else {
			where += ` AND user_id = ?`
		}
		args = append(args, *userID)
	}
	args = append(args, limit, offset)
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &members,
		`SELECT * FROM family_members`+where+` ORDER BY joined_at ASC, id ASC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members: %w", err)
	}
	return members, nil
}

func (r *sqlxFamilyRepository) ListMembersByGroupID(ctx context.Context, groupID string) ([]models.FamilyMember, error) {
	members := []models.FamilyMember{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &members,
		`SELECT * FROM family_members WHERE family_group_id = ? ORDER BY joined_at ASC, id ASC`, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list family members by group: %w", err)
	}
	return members, nil
}

func (r *sqlxFamilyRepository) UpdateMember(ctx context.Context, member *models.FamilyMember) error {
	query := `UPDATE family_members SET family_group_id = :family_group_id, user_id = :user_id WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("failed to update family member: %w", err)
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

func (r *sqlxFamilyRepository) DeleteMember(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM family_members WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete family member: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
