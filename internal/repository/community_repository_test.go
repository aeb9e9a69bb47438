package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"balanceai/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postColumns() []string {
	return []string{
		"id", "author_id", "author_name", "content", "category",
		"is_anonymous", "likes_count", "comments_count", "created_at", "updated_at",
	}
}

func TestSQLXCommunityRepository_CreatePost(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	post := &models.CommunityPost{
		AuthorID:    sql.NullInt64{Int64: 7, Valid: true},
		AuthorName:  "Kim",
		Content:     "hit my step goal every day this week",
		Category:    "milestones",
		IsAnonymous: false,
		CreatedAt:   "2025-03-12T09:00:00Z",
		UpdatedAt:   "2025-03-12T09:00:00Z",
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO community_posts`)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.CreatePost(context.Background(), post)

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_GetPostByID_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM community_posts WHERE id = ?`)).
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	post, err := repo.GetPostByID(context.Background(), 404)

	assert.NoError(t, err)
	assert.Nil(t, post)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_ListFeed(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	category := "milestones"
	authorID := int64(7)

	t.Run("unfiltered", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow(int64(2), nil, "Anonymous", "late night thoughts", "support", true, 0, 0, "2025-03-12T10:00:00Z", "2025-03-12T10:00:00Z").
			AddRow(int64(1), int64(7), "Kim", "week one done", "milestones", false, 3, 1, "2025-03-12T09:00:00Z", "2025-03-12T09:00:00Z")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM community_posts ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)).
			WithArgs(10, 0).
			WillReturnRows(rows)

		posts, err := repo.ListFeed(context.Background(), FeedFilters{}, 10, 0)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, int64(2), posts[0].ID)
		assert.False(t, posts[0].AuthorID.Valid)
	})

	t.Run("category filter", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns()).
			AddRow(int64(1), int64(7), "Kim", "week one done", "milestones", false, 3, 1, "2025-03-12T09:00:00Z", "2025-03-12T09:00:00Z")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM community_posts WHERE category = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)).
			WithArgs(category, 10, 0).
			WillReturnRows(rows)

		posts, err := repo.ListFeed(context.Background(), FeedFilters{Category: &category}, 10, 0)

		require.NoError(t, err)
		require.Len(t, posts, 1)
	})

	t.Run("category and author filters combine", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns())

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM community_posts WHERE category = ? AND author_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)).
			WithArgs(category, authorID, 10, 0).
			WillReturnRows(rows)

		posts, err := repo.ListFeed(context.Background(), FeedFilters{Category: &category, AuthorID: &authorID}, 10, 0)

		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_CountFeed(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	authorID := int64(7)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM community_posts WHERE author_id = ?`)).
		WithArgs(authorID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountFeed(context.Background(), FeedFilters{AuthorID: &authorID})

	assert.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_AdjustPostCounters(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	t.Run("clamps at zero in SQL", func(t *testing.T) {
		mock.ExpectExec(`UPDATE community_posts\s+SET likes_count = MAX\(0, likes_count \+ \?\),\s+comments_count = MAX\(0, comments_count \+ \?\),\s+updated_at = \?\s+WHERE id = \?`).
			WithArgs(-1, 0, "2025-03-12T09:30:00Z", int64(11)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AdjustPostCounters(context.Background(), 11, -1, 0, "2025-03-12T09:30:00Z")

		assert.NoError(t, err)
	})

	t.Run("missing post surfaces ErrNoRows", func(t *testing.T) {
		mock.ExpectExec(`UPDATE community_posts`).
			WithArgs(1, 0, "2025-03-12T09:30:00Z", int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AdjustPostCounters(context.Background(), 404, 1, 0, "2025-03-12T09:30:00Z")

		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_DeletePostChildren(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_likes WHERE post_id = ?`)).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM post_comments WHERE post_id = ?`)).
		WithArgs(int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.DeletePostChildren(context.Background(), 11)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_GetLikeByPostAndUser(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	t.Run("existing like", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "post_id", "user_id", "created_at"}).
			AddRow(int64(5), int64(11), int64(7), "2025-03-12T09:10:00Z")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM post_likes WHERE post_id = ? AND user_id = ? LIMIT 1`)).
			WithArgs(int64(11), int64(7)).
			WillReturnRows(rows)

		like, err := repo.GetLikeByPostAndUser(context.Background(), 11, 7)

		require.NoError(t, err)
		require.NotNil(t, like)
		assert.Equal(t, int64(5), like.ID)
	})

	t.Run("no like yet", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM post_likes WHERE post_id = ? AND user_id = ? LIMIT 1`)).
			WithArgs(int64(11), int64(8)).
			WillReturnError(sql.ErrNoRows)

		like, err := repo.GetLikeByPostAndUser(context.Background(), 11, 8)

		assert.NoError(t, err)
		assert.Nil(t, like)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_ListComments(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	postID := int64(11)

	rows := sqlmock.NewRows([]string{"id", "post_id", "user_id", "comment_text", "created_at"}).
		AddRow(int64(3), postID, int64(8), "congrats!", "2025-03-12T10:00:00Z").
		AddRow(int64(2), postID, int64(9), "keep going", "2025-03-12T09:30:00Z")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM post_comments WHERE post_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`)).
		WithArgs(postID, 10, 0).
		WillReturnRows(rows)

	comments, err := repo.ListComments(context.Background(), &postID, nil, 10, 0)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "congrats!", comments[0].CommentText)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLXCommunityRepository_UpdateComment_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewSQLXCommunityRepository(db)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE post_comments SET comment_text = ? WHERE id = ?`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateComment(context.Background(), &models.PostComment{ID: 404, CommentText: "edited"})

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
