package validation

import (
	"encoding/json"
	"strings"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
)

const (
	// DefaultPageSize applies when a list request omits limit.
	DefaultPageSize = 10
	// MaxPageSize caps list page sizes; larger values are clamped.
	MaxPageSize = 100
	// MaxFeedPageSize caps the community feed; larger values are rejected.
	MaxFeedPageSize = 50
	// MaxCommentLength bounds comment bodies.
	MaxCommentLength = 2000
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// NormalizePagination clamps limit into [1, MaxPageSize] and offset to >= 0.
// Used by the plain CRUD listings, which tolerate out-of-range values.
func (v *Validator) NormalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ValidateFeedPagination rejects out-of-range feed pages instead of
// clamping them. Limit must be in [1, MaxFeedPageSize], offset >= 0.
func (v *Validator) ValidateFeedPagination(limit, offset int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if limit < 1 {
		errors = append(errors, domain.NewFieldError("limit", string(domain.CodeInvalidLimit), "limit must be at least 1"))
	} else if limit > MaxFeedPageSize {
		errors = append(errors, domain.NewFieldError("limit", string(domain.CodeLimitExceeded), "limit must not exceed 50"))
	}

	if offset < 0 {
		errors = append(errors, domain.NewFieldError("offset", string(domain.CodeInvalidOffset), "offset must not be negative"))
	}

	return errors
}

// ValidateCreateUser validates a user registration request.
func (v *Validator) ValidateCreateUser(req *dto.CreateUserRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Email) == "" {
		errors = append(errors, domain.NewMissingFieldError("email"))
	} else if !strings.Contains(req.Email, "@") {
		errors = append(errors, domain.NewInvalidFieldError("email", "email must contain @"))
	}

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	}

	return errors
}

// ValidateCreateUserSettings validates a settings creation request.
func (v *Validator) ValidateCreateUserSettings(req *dto.CreateUserSettingsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if req.Theme != nil && !domain.IsValidTheme(*req.Theme) {
		errors = append(errors, domain.NewFieldError("theme", "INVALID_THEME", "unknown theme"))
	}

	return errors
}

// ValidateUpdateUserSettings validates a settings update request.
func (v *Validator) ValidateUpdateUserSettings(req *dto.UpdateUserSettingsRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.Theme != nil && !domain.IsValidTheme(*req.Theme) {
		errors = append(errors, domain.NewFieldError("theme", "INVALID_THEME", "unknown theme"))
	}

	return errors
}

// ValidateSubmitQuiz validates a full quiz submission.
func (v *Validator) ValidateSubmitQuiz(req *dto.SubmitQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
		return errors
	}

	for _, a := range req.Answers {
		if strings.TrimSpace(a.QuestionID) == "" {
			errors = append(errors, domain.NewMissingFieldError("questionId"))
		}
		if a.AnswerIndex == nil {
			errors = append(errors, domain.NewMissingFieldError("answerIndex"))
		} else if *a.AnswerIndex < 0 {
			errors = append(errors, domain.NewInvalidFieldError("answerIndex", "answerIndex must not be negative"))
		}
		if strings.TrimSpace(a.Category) == "" {
			errors = append(errors, domain.NewMissingFieldError("category"))
		}
		if len(errors) > 0 {
			// one bad answer invalidates the batch; no need to scan the rest
			break
		}
	}

	return errors
}

// ValidateCreateQuizResponse validates a single answer record.
func (v *Validator) ValidateCreateQuizResponse(req *dto.CreateQuizResponseRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.QuestionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("questionId"))
	}
	if req.AnswerIndex == nil {
		errors = append(errors, domain.NewMissingFieldError("answerIndex"))
	}
	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}

	return errors
}

// ValidateCreateQuizResult validates a quiz result record.
func (v *Validator) ValidateCreateQuizResult(req *dto.CreateQuizResultRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if req.BalanceScore == nil {
		errors = append(errors, domain.NewMissingFieldError("balanceScore"))
	}
	if strings.TrimSpace(req.MoodResult) == "" {
		errors = append(errors, domain.NewMissingFieldError("moodResult"))
	} else if !domain.IsValidMoodResult(req.MoodResult) {
		errors = append(errors, domain.NewFieldError("moodResult", "INVALID_MOOD_RESULT", "unknown mood result"))
	}

	return errors
}

// ValidateCreateWellnessGoal validates a goal selection request.
func (v *Validator) ValidateCreateWellnessGoal(req *dto.CreateWellnessGoalRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.GoalID) == "" {
		errors = append(errors, domain.NewMissingFieldError("goalId"))
	}
	if strings.TrimSpace(req.GoalTitle) == "" {
		errors = append(errors, domain.NewMissingFieldError("goalTitle"))
	}

	return errors
}

// ValidateCreateWellnessPlan validates a plan creation request. PlanData
// must parse as JSON.
func (v *Validator) ValidateCreateWellnessPlan(req *dto.CreateWellnessPlanRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.PlanData) == "" {
		errors = append(errors, domain.NewMissingFieldError("planData"))
	} else if !json.Valid([]byte(req.PlanData)) {
		errors = append(errors, domain.NewFieldError("planData", "INVALID_PLAN_DATA", "planData must be valid JSON"))
	}

	return errors
}

// ValidateUpdateWellnessPlan validates a plan update request.
func (v *Validator) ValidateUpdateWellnessPlan(req *dto.UpdateWellnessPlanRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.PlanData != nil && !json.Valid([]byte(*req.PlanData)) {
		errors = append(errors, domain.NewFieldError("planData", "INVALID_PLAN_DATA", "planData must be valid JSON"))
	}

	return errors
}

// ValidateCreateUserMetric validates a metric sample.
func (v *Validator) ValidateCreateUserMetric(req *dto.CreateUserMetricRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.MetricType) == "" {
		errors = append(errors, domain.NewMissingFieldError("metricType"))
	} else if !domain.IsValidMetricType(req.MetricType) {
		errors = append(errors, domain.NewFieldError("metricType", "INVALID_METRIC_TYPE", "unknown metric type"))
	}
	if strings.TrimSpace(req.Value) == "" {
		errors = append(errors, domain.NewMissingFieldError("value"))
	}

	return errors
}

// ValidateUpdateUserMetric validates a metric update.
func (v *Validator) ValidateUpdateUserMetric(req *dto.UpdateUserMetricRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.MetricType != nil && !domain.IsValidMetricType(*req.MetricType) {
		errors = append(errors, domain.NewFieldError("metricType", "INVALID_METRIC_TYPE", "unknown metric type"))
	}

	return errors
}

// ValidateCreateBadge validates a badge award.
func (v *Validator) ValidateCreateBadge(req *dto.CreateBadgeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.BadgeID) == "" {
		errors = append(errors, domain.NewMissingFieldError("badgeId"))
	}
	if strings.TrimSpace(req.BadgeName) == "" {
		errors = append(errors, domain.NewMissingFieldError("badgeName"))
	}

	return errors
}

// ValidateCreateUserStreak validates a streak initialization request.
func (v *Validator) ValidateCreateUserStreak(req *dto.CreateUserStreakRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if req.CurrentStreak != nil && *req.CurrentStreak < 0 {
		errors = append(errors, domain.NewInvalidFieldError("currentStreak", "currentStreak must not be negative"))
	}
	if req.LongestStreak != nil && *req.LongestStreak < 0 {
		errors = append(errors, domain.NewInvalidFieldError("longestStreak", "longestStreak must not be negative"))
	}

	return errors
}

// ValidateCreateDailyTask validates a task creation request.
func (v *Validator) ValidateCreateDailyTask(req *dto.CreateDailyTaskRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.TaskName) == "" {
		errors = append(errors, domain.NewMissingFieldError("taskName"))
	}
	if strings.TrimSpace(req.TaskTime) == "" {
		errors = append(errors, domain.NewMissingFieldError("taskTime"))
	}

	return errors
}

// ValidateCreateCommunityPost validates a post publication request.
func (v *Validator) ValidateCreateCommunityPost(req *dto.CreateCommunityPostRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	}
	if strings.TrimSpace(req.Category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if strings.TrimSpace(req.AuthorName) == "" && !req.IsAnonymous {
		errors = append(errors, domain.NewMissingFieldError("authorName"))
	}

	return errors
}

// ValidateCreatePostLike validates a like creation request.
func (v *Validator) ValidateCreatePostLike(req *dto.CreatePostLikeRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.PostID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("postId"))
	}
	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}

	return errors
}

// ValidateCreatePostComment validates a comment creation request.
func (v *Validator) ValidateCreatePostComment(req *dto.CreatePostCommentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.PostID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("postId"))
	}
	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}
	if strings.TrimSpace(req.CommentText) == "" {
		errors = append(errors, domain.NewFieldError("commentText", "EMPTY_COMMENT_TEXT", "comment text must not be empty"))
	} else if len(req.CommentText) > MaxCommentLength {
		errors = append(errors, domain.NewInvalidFieldError("commentText", "comment text too long"))
	}

	return errors
}

// ValidateUpdatePostComment validates a comment update request.
func (v *Validator) ValidateUpdatePostComment(req *dto.UpdatePostCommentRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.CommentText != nil {
		if strings.TrimSpace(*req.CommentText) == "" {
			errors = append(errors, domain.NewFieldError("commentText", "EMPTY_COMMENT_TEXT", "comment text must not be empty"))
		} else if len(*req.CommentText) > MaxCommentLength {
			errors = append(errors, domain.NewInvalidFieldError("commentText", "comment text too long"))
		}
	}

	return errors
}

// ValidateCreateFamilyMember validates a group join request.
func (v *Validator) ValidateCreateFamilyMember(req *dto.CreateFamilyMemberRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.FamilyGroupID) == "" {
		errors = append(errors, domain.NewMissingFieldError("familyGroupId"))
	}
	if req.UserID <= 0 {
		errors = append(errors, domain.NewMissingFieldError("userId"))
	}

	return errors
}

// ValidateChatMessage validates a chatbot message request.
func (v *Validator) ValidateChatMessage(req *dto.ChatMessageRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Message) == "" {
		errors = append(errors, domain.NewMissingFieldError("message"))
	}

	return errors
}
