package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/repository"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CommunityHandler handles posts, likes, comments, and the feed.
type CommunityHandler struct {
	communityService service.CommunityService
}

// NewCommunityHandler creates a new CommunityHandler instance.
func NewCommunityHandler(communityService service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// GetFeed handles GET /api/community/feed. Supports ?category= and
// ?authorId= filters; limit is capped at 50 and out-of-range values are
// rejected rather than clamped.
func (h *CommunityHandler) GetFeed(c *fiber.Ctx) error {
	authorID, err := optionalInt64Query(c, "authorId")
	if err != nil {
		return err
	}
	filters := repository.FeedFilters{
		Category: optionalStringQuery(c, "category"),
		AuthorID: authorID,
	}

	limit, offset, err := paginationQuery(c, 10)
	if err != nil {
		return err
	}

	feed, err := h.communityService.GetFeed(c.Context(), filters, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(feed)
}

// ToggleLike handles POST /api/community/posts/:id/like.
func (h *CommunityHandler) ToggleLike(c *fiber.Ctx) error {
	postID, err := requiredIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ToggleLikeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.communityService.ToggleLike(c.Context(), postID, req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// GetPosts handles GET /api/community-posts.
func (h *CommunityHandler) GetPosts(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		post, err := h.communityService.GetPost(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(post)
	}

	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	posts, err := h.communityService.ListPosts(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(posts)
}

// CreatePost handles POST /api/community-posts.
func (h *CommunityHandler) CreatePost(c *fiber.Ctx) error {
	var req dto.CreateCommunityPostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.communityService.CreatePost(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/community-posts?id=.
func (h *CommunityHandler) UpdatePost(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCommunityPostRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	post, err := h.communityService.UpdatePost(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/community-posts?id=. Likes and comments
// go with the post.
func (h *CommunityHandler) DeletePost(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.communityService.DeletePost(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "post deleted"})
}

// GetLikes handles GET /api/post-likes.
func (h *CommunityHandler) GetLikes(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		like, err := h.communityService.GetLike(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(like)
	}

	postID, err := optionalInt64Query(c, "postId")
	if err != nil {
		return err
	}
	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	likes, err := h.communityService.ListLikes(c.Context(), postID, userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(likes)
}

// CreateLike handles POST /api/post-likes.
func (h *CommunityHandler) CreateLike(c *fiber.Ctx) error {
	var req dto.CreatePostLikeRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	like, err := h.communityService.CreateLike(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(like)
}

// DeleteLike handles DELETE /api/post-likes?id=.
func (h *CommunityHandler) DeleteLike(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.communityService.DeleteLike(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "like deleted"})
}

// GetComments handles GET /api/post-comments.
func (h *CommunityHandler) GetComments(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		comment, err := h.communityService.GetComment(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(comment)
	}

	postID, err := optionalInt64Query(c, "postId")
	if err != nil {
		return err
	}
	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	comments, err := h.communityService.ListComments(c.Context(), postID, userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// CreateComment handles POST /api/post-comments.
func (h *CommunityHandler) CreateComment(c *fiber.Ctx) error {
	var req dto.CreatePostCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.communityService.CreateComment(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// UpdateComment handles PUT /api/post-comments?id=.
func (h *CommunityHandler) UpdateComment(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePostCommentRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	comment, err := h.communityService.UpdateComment(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(comment)
}

// DeleteComment handles DELETE /api/post-comments?id=.
func (h *CommunityHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.communityService.DeleteComment(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "comment deleted"})
}
