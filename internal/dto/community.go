package dto

import "balanceai/internal/repository/models"

// CommunityPostResponse represents a post in the API response
type CommunityPostResponse struct {
	ID            int64  `json:"id"`
	AuthorID      *int64 `json:"authorId"`
	AuthorName    string `json:"authorName"`
	Content       string `json:"content"`
	Category      string `json:"category"`
	IsAnonymous   bool   `json:"isAnonymous"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// CreateCommunityPostRequest is the request body for publishing a post
type CreateCommunityPostRequest struct {
	AuthorID    *int64 `json:"authorId"`
	AuthorName  string `json:"authorName"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	IsAnonymous bool   `json:"isAnonymous"`
}

// UpdateCommunityPostRequest carries the mutable post fields
type UpdateCommunityPostRequest struct {
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	IsAnonymous *bool   `json:"isAnonymous"`
}

// PostLikeResponse represents a like row in the API response
type PostLikeResponse struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"postId"`
	UserID    int64  `json:"userId"`
	CreatedAt string `json:"createdAt"`
}

// CreatePostLikeRequest is the request body for liking a post
type CreatePostLikeRequest struct {
	PostID int64 `json:"postId"`
	UserID int64 `json:"userId"`
}

// ToggleLikeRequest is the request body for the like toggle endpoint
type ToggleLikeRequest struct {
	UserID int64 `json:"userId"`
}

// ToggleLikeResponse reports the post's like state after a toggle
type ToggleLikeResponse struct {
	Action     string `json:"action"`
	PostID     int64  `json:"postId"`
	UserID     int64  `json:"userId"`
	LikesCount int    `json:"likesCount"`
}

// PostCommentResponse represents a comment in the API response
type PostCommentResponse struct {
	ID          int64  `json:"id"`
	PostID      int64  `json:"postId"`
	UserID      int64  `json:"userId"`
	CommentText string `json:"commentText"`
	CreatedAt   string `json:"createdAt"`
}

// CreatePostCommentRequest is the request body for commenting on a post
type CreatePostCommentRequest struct {
	PostID      int64  `json:"postId"`
	UserID      int64  `json:"userId"`
	CommentText string `json:"commentText"`
}

// UpdatePostCommentRequest carries the mutable comment fields
type UpdatePostCommentRequest struct {
	CommentText *string `json:"commentText"`
}

// PaginationMeta describes the window a list response covers
type PaginationMeta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// FeedResponse is one page of the community feed
type FeedResponse struct {
	Posts      []CommunityPostResponse `json:"posts"`
	Pagination PaginationMeta          `json:"pagination"`
}

// FamilyMemberResponse represents a group membership row in the API response
type FamilyMemberResponse struct {
	ID            int64  `json:"id"`
	FamilyGroupID string `json:"familyGroupId"`
	UserID        int64  `json:"userId"`
	JoinedAt      string `json:"joinedAt"`
}

// CreateFamilyMemberRequest is the request body for joining a family group
type CreateFamilyMemberRequest struct {
	FamilyGroupID string `json:"familyGroupId"`
	UserID        int64  `json:"userId"`
}

// UpdateFamilyMemberRequest carries the mutable membership fields
type UpdateFamilyMemberRequest struct {
	FamilyGroupID *string `json:"familyGroupId"`
}

// FamilyGroupMemberResponse is a membership joined with the member's
// profile and progress summary. Name falls back to a placeholder when the
// user row is missing.
type FamilyGroupMemberResponse struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	AvatarURL    *string             `json:"avatarUrl"`
	JoinedAt     string              `json:"joinedAt"`
	Streak       *UserStreakResponse `json:"streak"`
	BadgeCount   int                 `json:"badgeCount"`
	LatestResult *QuizResultResponse `json:"latestResult"`
}

// FamilyGroupResponse lists the members of one family group
type FamilyGroupResponse struct {
	GroupID string                      `json:"familyGroupId"`
	Members []FamilyGroupMemberResponse `json:"members"`
}

// NewCommunityPostResponse maps a post row to its API view.
func NewCommunityPostResponse(m *models.CommunityPost) CommunityPostResponse {
	return CommunityPostResponse{
		ID:            m.ID,
		AuthorID:      nullableInt64(m.AuthorID),
		AuthorName:    m.AuthorName,
		Content:       m.Content,
		Category:      m.Category,
		IsAnonymous:   m.IsAnonymous,
		LikesCount:    m.LikesCount,
		CommentsCount: m.CommentsCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// NewCommunityPostResponses maps a slice of post rows to their API views.
func NewCommunityPostResponses(rows []models.CommunityPost) []CommunityPostResponse {
	out := make([]CommunityPostResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewCommunityPostResponse(&rows[i]))
	}
	return out
}

// NewPostLikeResponse maps a like row to its API view.
func NewPostLikeResponse(m *models.PostLike) PostLikeResponse {
	return PostLikeResponse{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// NewPostLikeResponses maps a slice of like rows to their API views.
func NewPostLikeResponses(rows []models.PostLike) []PostLikeResponse {
	out := make([]PostLikeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewPostLikeResponse(&rows[i]))
	}
	return out
}

// NewPostCommentResponse maps a comment row to its API view.
func NewPostCommentResponse(m *models.PostComment) PostCommentResponse {
	return PostCommentResponse{
		ID:          m.ID,
		PostID:      m.PostID,
		UserID:      m.UserID,
		CommentText: m.CommentText,
		CreatedAt:   m.CreatedAt,
	}
}

// NewPostCommentResponses maps a slice of comment rows to their API views.
func NewPostCommentResponses(rows []models.PostComment) []PostCommentResponse {
	out := make([]PostCommentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewPostCommentResponse(&rows[i]))
	}
	return out
}

// NewFamilyMemberResponse maps a membership row to its API view.
func NewFamilyMemberResponse(m *models.FamilyMember) FamilyMemberResponse {
	return FamilyMemberResponse{
		ID:            m.ID,
		FamilyGroupID: m.FamilyGroupID,
		UserID:        m.UserID,
		JoinedAt:      m.JoinedAt,
	}
}

// NewFamilyMemberResponses maps a slice of membership rows to their API views.
func NewFamilyMemberResponses(rows []models.FamilyMember) []FamilyMemberResponse {
	out := make([]FamilyMemberResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewFamilyMemberResponse(&rows[i]))
	}
	return out
}
