package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"balanceai/internal/cache"
	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/logger"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"
	"balanceai/internal/util"
	"balanceai/internal/validation"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CommunityService defines the interface for posts, likes, comments, and
// the cached feed.
type CommunityService interface {
	CreatePost(ctx context.Context, req *dto.CreateCommunityPostRequest) (*dto.CommunityPostResponse, error)
	GetPost(ctx context.Context, id int64) (*dto.CommunityPostResponse, error)
	ListPosts(ctx context.Context, limit, offset int) ([]dto.CommunityPostResponse, error)
	UpdatePost(ctx context.Context, id int64, req *dto.UpdateCommunityPostRequest) (*dto.CommunityPostResponse, error)
	DeletePost(ctx context.Context, id int64) error

	GetFeed(ctx context.Context, filters repository.FeedFilters, limit, offset int) (*dto.FeedResponse, error)
	ToggleLike(ctx context.Context, postID, userID int64) (*dto.ToggleLikeResponse, error)

	CreateLike(ctx context.Context, req *dto.CreatePostLikeRequest) (*dto.PostLikeResponse, error)
	GetLike(ctx context.Context, id int64) (*dto.PostLikeResponse, error)
	ListLikes(ctx context.Context, postID, userID *int64, limit, offset int) ([]dto.PostLikeResponse, error)
	DeleteLike(ctx context.Context, id int64) error

	CreateComment(ctx context.Context, req *dto.CreatePostCommentRequest) (*dto.PostCommentResponse, error)
	GetComment(ctx context.Context, id int64) (*dto.PostCommentResponse, error)
	ListComments(ctx context.Context, postID, userID *int64, limit, offset int) ([]dto.PostCommentResponse, error)
	UpdateComment(ctx context.Context, id int64, req *dto.UpdatePostCommentRequest) (*dto.PostCommentResponse, error)
	DeleteComment(ctx context.Context, id int64) error
}

type communityServiceImpl struct {
	communityRepo repository.CommunityRepository
	userRepo      repository.UserRepository
	txManager     domain.TransactionManager
	cache         domain.Cache
	feedTTL       time.Duration
	validator     *validation.Validator
}

// NewCommunityService creates a new instance of CommunityService. cache may
// be nil, in which case the feed is served uncached.
func NewCommunityService(
	communityRepo repository.CommunityRepository,
	userRepo repository.UserRepository,
	txManager domain.TransactionManager,
	cacheClient domain.Cache,
	feedTTL time.Duration,
	validator *validation.Validator,
) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		txManager:     txManager,
		cache:         cacheClient,
		feedTTL:       feedTTL,
		validator:     validator,
	}
}

func (s *communityServiceImpl) CreatePost(ctx context.Context, req *dto.CreateCommunityPostRequest) (*dto.CommunityPostResponse, error) {
	if errs := s.validator.ValidateCreateCommunityPost(req); len(errs) > 0 {
		return nil, errs
	}

	if req.AuthorID != nil {
		user, err := s.userRepo.GetUserByID(ctx, *req.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		if user == nil {
			return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
		}
	}

	authorName := req.AuthorName
	if req.IsAnonymous {
		authorName = "Anonymous"
	}

	now := util.NowRFC3339()
	post := &models.CommunityPost{
		AuthorID:    util.PtrToNullInt64(req.AuthorID),
		AuthorName:  authorName,
		Content:     req.Content,
		Category:    req.Category,
		IsAnonymous: req.IsAnonymous,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.communityRepo.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("failed to create community post: %w", err)
	}
	post.ID = id

	s.bumpFeedVersion(ctx)

	out := dto.NewCommunityPostResponse(post)
	return &out, nil
}

func (s *communityServiceImpl) GetPost(ctx context.Context, id int64) (*dto.CommunityPostResponse, error) {
	post, err := s.communityRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get community post: %w", err)
	}
	if post == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	out := dto.NewCommunityPostResponse(post)
	return &out, nil
}

func (s *communityServiceImpl) ListPosts(ctx context.Context, limit, offset int) ([]dto.CommunityPostResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.communityRepo.ListPosts(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list community posts: %w", err)
	}

	return dto.NewCommunityPostResponses(rows), nil
}

func (s *communityServiceImpl) UpdatePost(ctx context.Context, id int64, req *dto.UpdateCommunityPostRequest) (*dto.CommunityPostResponse, error) {
	post, err := s.communityRepo.GetPostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get community post: %w", err)
	}
	if post == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	if req.Content == nil && req.Category == nil && req.IsAnonymous == nil {
		out := dto.NewCommunityPostResponse(post)
		return &out, nil
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.IsAnonymous != nil {
		post.IsAnonymous = *req.IsAnonymous
	}
	post.UpdatedAt = util.NowRFC3339()

	if err := s.communityRepo.UpdatePost(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update community post: %w", err)
	}

	s.bumpFeedVersion(ctx)

	out := dto.NewCommunityPostResponse(post)
	return &out, nil
}

// DeletePost removes a post together with its likes and comments in a
// single transaction.
func (s *communityServiceImpl) DeletePost(ctx context.Context, id int64) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.communityRepo.DeletePostChildren(txCtx, id); err != nil {
			return err
		}
		deleted, err := s.communityRepo.DeletePost(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete community post: %w", err)
		}
		if !deleted {
			return domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.bumpFeedVersion(ctx)
	return nil
}

// GetFeed serves one feed page, from Redis when a fresh copy exists. Pages
// are cached under a versioned key; any post mutation bumps the version so
// stale pages simply stop being read and expire on their TTL.
func (s *communityServiceImpl) GetFeed(ctx context.Context, filters repository.FeedFilters, limit, offset int) (*dto.FeedResponse, error) {
	if errs := s.validator.ValidateFeedPagination(limit, offset); len(errs) > 0 {
		return nil, errs
	}

	key := s.feedPageKey(ctx, filters, limit, offset)
	if key != "" {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var resp dto.FeedResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return &resp, nil
			}
		} else if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Feed cache read failed", zap.Error(err))
		}
	}

	var (
		posts []models.CommunityPost
		total int
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		posts, err = s.communityRepo.ListFeed(gCtx, filters, limit, offset)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.communityRepo.CountFeed(gCtx, filters)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load community feed: %w", err)
	}

	resp := &dto.FeedResponse{
		Posts: dto.NewCommunityPostResponses(posts),
		Pagination: dto.PaginationMeta{
			Limit:  limit,
			Offset: offset,
			Total:  total,
		},
	}

	if key != "" {
		if payload, err := json.Marshal(resp); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.feedTTL); err != nil {
				logger.Get().Warn("Feed cache write failed", zap.Error(err))
			}
		}
	}

	return resp, nil
}

func (s *communityServiceImpl) feedVersionKey() string {
	return cache.GenerateCacheKey("community", "feed", "version")
}

// feedPageKey returns "" when caching is unavailable.
func (s *communityServiceImpl) feedPageKey(ctx context.Context, filters repository.FeedFilters, limit, offset int) string {
	if s.cache == nil {
		return ""
	}
	version, err := s.cache.Get(ctx, s.feedVersionKey())
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			version = "0"
		} else {
			logger.Get().Warn("Feed version read failed", zap.Error(err))
			return ""
		}
	}
	category := ""
	if filters.Category != nil {
		category = *filters.Category
	}
	author := ""
	if filters.AuthorID != nil {
		author = strconv.FormatInt(*filters.AuthorID, 10)
	}
	return cache.GenerateCacheKey("community", "feed", "v"+version,
		category, author, strconv.Itoa(limit), strconv.Itoa(offset))
}

// bumpFeedVersion invalidates all cached feed pages. Cache trouble is not
// a reason to fail the mutation, so errors are only logged.
func (s *communityServiceImpl) bumpFeedVersion(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.Incr(ctx, s.feedVersionKey()); err != nil {
		logger.Get().Warn("Feed version bump failed", zap.Error(err))
	}
}

// ToggleLike likes the post for the user, or removes an existing like. The
// like row and the denormalized counter move in the same transaction.
func (s *communityServiceImpl) ToggleLike(ctx context.Context, postID, userID int64) (*dto.ToggleLikeResponse, error) {
	if userID <= 0 {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("userId")}
	}

	post, err := s.communityRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get community post: %w", err)
	}
	if post == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	action := "liked"
	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.communityRepo.GetLikeByPostAndUser(txCtx, postID, userID)
		if err != nil {
			return err
		}

		now := util.NowRFC3339()
		if existing == nil {
			like := &models.PostLike{PostID: postID, UserID: userID, CreatedAt: now}
			if _, err := s.communityRepo.CreateLike(txCtx, like); err != nil {
				return err
			}
			return s.communityRepo.AdjustPostCounters(txCtx, postID, 1, 0, now)
		}

		if _, err := s.communityRepo.DeleteLike(txCtx, existing.ID); err != nil {
			return err
		}
		action = "unliked"
		return s.communityRepo.AdjustPostCounters(txCtx, postID, -1, 0, now)
	})
	if err != nil {
		return nil, err
	}

	s.bumpFeedVersion(ctx)

	refreshed, err := s.communityRepo.GetPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload community post: %w", err)
	}
	if refreshed == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	return &dto.ToggleLikeResponse{
		Action:     action,
		PostID:     postID,
		UserID:     userID,
		LikesCount: refreshed.LikesCount,
	}, nil
}

func (s *communityServiceImpl) CreateLike(ctx context.Context, req *dto.CreatePostLikeRequest) (*dto.PostLikeResponse, error) {
	if errs := s.validator.ValidateCreatePostLike(req); len(errs) > 0 {
		return nil, errs
	}

	post, err := s.communityRepo.GetPostByID(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get community post: %w", err)
	}
	if post == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	existing, err := s.communityRepo.GetLikeByPostAndUser(ctx, req.PostID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewError(domain.CodeValidation, "post already liked by user", nil)
	}

	now := util.NowRFC3339()
	like := &models.PostLike{PostID: req.PostID, UserID: req.UserID, CreatedAt: now}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.communityRepo.CreateLike(txCtx, like)
		if err != nil {
			return err
		}
		like.ID = id
		return s.communityRepo.AdjustPostCounters(txCtx, req.PostID, 1, 0, now)
	})
	if err != nil {
		return nil, err
	}

	s.bumpFeedVersion(ctx)

	out := dto.NewPostLikeResponse(like)
	return &out, nil
}

func (s *communityServiceImpl) GetLike(ctx context.Context, id int64) (*dto.PostLikeResponse, error) {
	like, err := s.communityRepo.GetLikeByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post like: %w", err)
	}
	if like == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "like not found")
	}

	out := dto.NewPostLikeResponse(like)
	return &out, nil
}

func (s *communityServiceImpl) ListLikes(ctx context.Context, postID, userID *int64, limit, offset int) ([]dto.PostLikeResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.communityRepo.ListLikes(ctx, postID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list post likes: %w", err)
	}

	return dto.NewPostLikeResponses(rows), nil
}

func (s *communityServiceImpl) DeleteLike(ctx context.Context, id int64) error {
	like, err := s.communityRepo.GetLikeByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post like: %w", err)
	}
	if like == nil {
		return domain.NewNotFoundError(domain.CodeNotFound, "like not found")
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.communityRepo.DeleteLike(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError(domain.CodeNotFound, "like not found")
		}
		return s.communityRepo.AdjustPostCounters(txCtx, like.PostID, -1, 0, util.NowRFC3339())
	})
	if err != nil {
		return err
	}

	s.bumpFeedVersion(ctx)
	return nil
}

func (s *communityServiceImpl) CreateComment(ctx context.Context, req *dto.CreatePostCommentRequest) (*dto.PostCommentResponse, error) {
	if errs := s.validator.ValidateCreatePostComment(req); len(errs) > 0 {
		return nil, errs
	}

	post, err := s.communityRepo.GetPostByID(ctx, req.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to get community post: %w", err)
	}
	if post == nil {
		return nil, domain.NewNotFoundError(domain.CodePostNotFound, "post not found")
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	now := util.NowRFC3339()
	comment := &models.PostComment{
		PostID:      req.PostID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
		CreatedAt:   now,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		id, err := s.communityRepo.CreateComment(txCtx, comment)
		if err != nil {
			return err
		}
		comment.ID = id
		return s.communityRepo.AdjustPostCounters(txCtx, req.PostID, 0, 1, now)
	})
	if err != nil {
		return nil, err
	}

	s.bumpFeedVersion(ctx)

	out := dto.NewPostCommentResponse(comment)
	return &out, nil
}

func (s *communityServiceImpl) GetComment(ctx context.Context, id int64) (*dto.PostCommentResponse, error) {
	comment, err := s.communityRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post comment: %w", err)
	}
	if comment == nil {
		return nil, domain.NewNotFoundError(domain.CodeCommentNotFound, "comment not found")
	}

	out := dto.NewPostCommentResponse(comment)
	return &out, nil
}

func (s *communityServiceImpl) ListComments(ctx context.Context, postID, userID *int64, limit, offset int) ([]dto.PostCommentResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.communityRepo.ListComments(ctx, postID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list post comments: %w", err)
	}

	return dto.NewPostCommentResponses(rows), nil
}

func (s *communityServiceImpl) UpdateComment(ctx context.Context, id int64, req *dto.UpdatePostCommentRequest) (*dto.PostCommentResponse, error) {
	if errs := s.validator.ValidateUpdatePostComment(req); len(errs) > 0 {
		return nil, errs
	}

	comment, err := s.communityRepo.GetCommentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post comment: %w", err)
	}
	if comment == nil {
		return nil, domain.NewNotFoundError(domain.CodeCommentNotFound, "comment not found")
	}

	if req.CommentText == nil {
		out := dto.NewPostCommentResponse(comment)
		return &out, nil
	}

	comment.CommentText = *req.CommentText

	if err := s.communityRepo.UpdateComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update post comment: %w", err)
	}

	out := dto.NewPostCommentResponse(comment)
	return &out, nil
}

func (s *communityServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	comment, err := s.communityRepo.GetCommentByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get post comment: %w", err)
	}
	if comment == nil {
		return domain.NewNotFoundError(domain.CodeCommentNotFound, "comment not found")
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		deleted, err := s.communityRepo.DeleteComment(txCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundError(domain.CodeCommentNotFound, "comment not found")
		}
		return s.communityRepo.AdjustPostCounters(txCtx, comment.PostID, 0, -1, util.NowRFC3339())
	})
	if err != nil {
		return err
	}

	s.bumpFeedVersion(ctx)
	return nil
}
