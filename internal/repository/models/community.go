package models

import "database/sql"

// CommunityPost is a social post. AuthorName is denormalized so anonymous
// posts keep a display name; likes/comments counts are denormalized and
// maintained transactionally with their child tables.
type CommunityPost struct {
	ID            int64         `db:"id"`
	AuthorID      sql.NullInt64 `db:"author_id"`
	AuthorName    string        `db:"author_name"`
	Content       string        `db:"content"`
	Category      string        `db:"category"`
	IsAnonymous   bool          `db:"is_anonymous"`
	LikesCount    int           `db:"likes_count"`
	CommentsCount int           `db:"comments_count"`
	CreatedAt     string        `db:"created_at"`
	UpdatedAt     string        `db:"updated_at"`
}

// PostLike marks that a user liked a post; at most one row per
// (post, user) pair, enforced by a unique index.
type PostLike struct {
	ID        int64  `db:"id"`
	PostID    int64  `db:"post_id"`
	UserID    int64  `db:"user_id"`
	CreatedAt string `db:"created_at"`
}

// PostComment is a comment on a post.
type PostComment struct {
	ID          int64  `db:"id"`
	PostID      int64  `db:"post_id"`
	UserID      int64  `db:"user_id"`
	CommentText string `db:"comment_text"`
	CreatedAt   string `db:"created_at"`
}

// FamilyMember links a user into an ad-hoc sharing group. Groups are
// plain string identifiers; a user may appear in several groups.
type FamilyMember struct {
	ID            int64  `db:"id"`
	FamilyGroupID string `db:"family_group_id"`
	UserID        int64  `db:"user_id"`
	JoinedAt      string `db:"joined_at"`
}
