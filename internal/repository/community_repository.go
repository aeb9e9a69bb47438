package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"balanceai/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// FeedFilters narrows the community feed query.
type FeedFilters struct {
	Category *string
	AuthorID *int64
}

// CommunityRepository covers posts, likes, and comments, including the
// denormalized counter updates that must run inside a transaction with
// their child-table mutations.
type CommunityRepository interface {
	CreatePost(ctx context.Context, post *models.CommunityPost) (int64, error)
	GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error)
	ListPosts(ctx context.Context, limit, offset int) ([]models.CommunityPost, error)
	ListFeed(ctx context.Context, filters FeedFilters, limit, offset int) ([]models.CommunityPost, error)
	CountFeed(ctx context.Context, filters FeedFilters) (int, error)
	UpdatePost(ctx context.Context, post *models.CommunityPost) error
	DeletePost(ctx context.Context, id int64) (bool, error)
	DeletePostChildren(ctx context.Context, postID int64) error
	AdjustPostCounters(ctx context.Context, postID int64, likesDelta, commentsDelta int, updatedAt string) error

	CreateLike(ctx context.Context, like *models.PostLike) (int64, error)
	GetLikeByID(ctx context.Context, id int64) (*models.PostLike, error)
	GetLikeByPostAndUser(ctx context.Context, postID, userID int64) (*models.PostLike, error)
	ListLikes(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostLike, error)
	UpdateLike(ctx context.Context, like *models.PostLike) error
	DeleteLike(ctx context.Context, id int64) (bool, error)

	CreateComment(ctx context.Context, comment *models.PostComment) (int64, error)
	GetCommentByID(ctx context.Context, id int64) (*models.PostComment, error)
	ListComments(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostComment, error)
	UpdateComment(ctx context.Context, comment *models.PostComment) error
	DeleteComment(ctx context.Context, id int64) (bool, error)
}

type sqlxCommunityRepository struct {
	db *sqlx.DB
}

// NewSQLXCommunityRepository creates a new community repository backed by sqlx.
func NewSQLXCommunityRepository(db *sqlx.DB) CommunityRepository {
	return &sqlxCommunityRepository{db: db}
}

func (r *sqlxCommunityRepository) CreatePost(ctx context.Context, post *models.CommunityPost) (int64, error) {
	query := `INSERT INTO community_posts (author_id, author_name, content, category, is_anonymous, likes_count, comments_count, created_at, updated_at)
	          VALUES (:author_id, :author_name, :content, :category, :is_anonymous, :likes_count, :comments_count, :created_at, :updated_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, post)
	if err != nil {
		return 0, fmt.Errorf("failed to create community post: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted community post id: %w", err)
	}
	return id, nil
}

func (r *sqlxCommunityRepository) GetPostByID(ctx context.Context, id int64) (*models.CommunityPost, error) {
	var post models.CommunityPost
	err := GetExecutor(ctx, r.db).GetContext(ctx, &post, `SELECT * FROM community_posts WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get community post by id: %w", err)
	}
	return &post, nil
}

func (r *sqlxCommunityRepository) ListPosts(ctx context.Context, limit, offset int) ([]models.CommunityPost, error) {
	posts := []models.CommunityPost{}
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &posts,
		`SELECT * FROM community_posts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list community posts: %w", err)
	}
	return posts, nil
}

func feedWhere(filters FeedFilters) (string, []interface{}) {
	where := ""
	args := []interface{}{}
	if filters.Category != nil {
		where = ` WHERE category = ?`
		args = append(args, *filters.Category)
	}
	if filters.AuthorID != nil {
		if where == "" {
			where = ` WHERE author_id = ?`
		} else {
			where += ` AND author_id = ?`
		}
		args = append(args, *filters.AuthorID)
	}
	return where, args
}

func (r *sqlxCommunityRepository) ListFeed(ctx context.Context, filters FeedFilters, limit, offset int) ([]models.CommunityPost, error) {
	posts := []models.CommunityPost{}
	where, args := feedWhere(filters)
	args = append(args, limit, offset)
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &posts,
		`SELECT * FROM community_posts`+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list community feed: %w", err)
	}
	return posts, nil
}

func (r *sqlxCommunityRepository) CountFeed(ctx context.Context, filters FeedFilters) (int, error) {
	var count int
	where, args := feedWhere(filters)
	err := GetExecutor(ctx, r.db).GetContext(ctx, &count,
		`SELECT COUNT(*) FROM community_posts`+where, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count community feed: %w", err)
	}
	return count, nil
}

func (r *sqlxCommunityRepository) UpdatePost(ctx context.Context, post *models.CommunityPost) error {
	query := `UPDATE community_posts SET content = :content, category = :category,
	          is_anonymous = :is_anonymous, likes_count = :likes_count,
	          comments_count = :comments_count, updated_at = :updated_at WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update community post: %w", err)
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

func (r *sqlxCommunityRepository) DeletePost(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM community_posts WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete community post: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

// DeletePostChildren removes all likes and comments of a post. Meant to run
// in the same transaction as DeletePost.
func (r *sqlxCommunityRepository) DeletePostChildren(ctx context.Context, postID int64) error {
	exec := GetExecutor(ctx, r.db)
	if _, err := exec.ExecContext(ctx, `DELETE FROM post_likes WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("failed to delete post likes: %w", err)
	}
	if _, err := exec.ExecContext(ctx, `DELETE FROM post_comments WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}
	return nil
}

// AdjustPostCounters shifts the denormalized counters, clamping at zero.
func (r *sqlxCommunityRepository) AdjustPostCounters(ctx context.Context, postID int64, likesDelta, commentsDelta int, updatedAt string) error {
	query := `UPDATE community_posts
	          SET likes_count = MAX(0, likes_count + ?),
	              comments_count = MAX(0, comments_count + ?),
	              updated_at = ?
	          WHERE id = ?`

	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, query, likesDelta, commentsDelta, updatedAt, postID)
	if err != nil {
		return fmt.Errorf("failed to adjust post counters: %w", err)
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

func (r *sqlxCommunityRepository) CreateLike(ctx context.Context, like *models.PostLike) (int64, error) {
	query := `INSERT INTO post_likes (post_id, user_id, created_at)
	          VALUES (:post_id, :user_id, :created_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, like)
	if err != nil {
		return 0, fmt.Errorf("failed to create post like: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted post like id: %w", err)
	}
	return id, nil
}

func (r *sqlxCommunityRepository) GetLikeByID(ctx context.Context, id int64) (*models.PostLike, error) {
	var like models.PostLike
	err := GetExecutor(ctx, r.db).GetContext(ctx, &like, `SELECT * FROM post_likes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post like by id: %w", err)
	}
	return &like, nil
}

func (r *sqlxCommunityRepository) GetLikeByPostAndUser(ctx context.Context, postID, userID int64) (*models.PostLike, error) {
	var like models.PostLike
	err := GetExecutor(ctx, r.db).GetContext(ctx, &like,
		`SELECT * FROM post_likes WHERE post_id = ? AND user_id = ? LIMIT 1`, postID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post like by post and user: %w", err)
	}
	return &like, nil
}

func (r *sqlxCommunityRepository) ListLikes(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostLike, error) {
	likes := []models.PostLike{}
	query := `SELECT * FROM post_likes`
	args := []interface{}{}
	where := ""
	if postID != nil {
		where = ` WHERE post_id = ?`
		args = append(args, *postID)
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
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &likes, query+where+` LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list post likes: %w", err)
	}
	return likes, nil
}

func (r *sqlxCommunityRepository) UpdateLike(ctx context.Context, like *models.PostLike) error {
	query := `UPDATE post_likes SET post_id = :post_id, user_id = :user_id WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, like)
	if err != nil {
		return fmt.Errorf("failed to update post like: %w", err)
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

func (r *sqlxCommunityRepository) DeleteLike(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM post_likes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post like: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}

func (r *sqlxCommunityRepository) CreateComment(ctx context.Context, comment *models.PostComment) (int64, error) {
	query := `INSERT INTO post_comments (post_id, user_id, comment_text, created_at)
	          VALUES (:post_id, :user_id, :comment_text, :created_at)`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, comment)
	if err != nil {
		return 0, fmt.Errorf("failed to create post comment: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted post comment id: %w", err)
	}
	return id, nil
}

func (r *sqlxCommunityRepository) GetCommentByID(ctx context.Context, id int64) (*models.PostComment, error) {
	var comment models.PostComment
	err := GetExecutor(ctx, r.db).GetContext(ctx, &comment, `SELECT * FROM post_comments WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post comment by id: %w", err)
	}
	return &comment, nil
}

func (r *sqlxCommunityRepository) ListComments(ctx context.Context, postID, userID *int64, limit, offset int) ([]models.PostComment, error) {
	comments := []models.PostComment{}
	query := `SELECT * FROM post_comments`
	args := []interface{}{}
	where := ""
	if postID != nil {
		where = ` WHERE post_id = ?`
		args = append(args, *postID)
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
	err := GetExecutor(ctx, r.db).SelectContext(ctx, &comments,
		query+where+` ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}
	return comments, nil
}

func (r *sqlxCommunityRepository) UpdateComment(ctx context.Context, comment *models.PostComment) error {
	query := `UPDATE post_comments SET comment_text = :comment_text WHERE id = :id`

	res, err := GetExecutor(ctx, r.db).NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("failed to update post comment: %w", err)
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

func (r *sqlxCommunityRepository) DeleteComment(ctx context.Context, id int64) (bool, error) {
	res, err := GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM post_comments WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post comment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows > 0, nil
}
