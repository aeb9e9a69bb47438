package dto

import "balanceai/internal/repository/models"

// UserMetricResponse represents one measurement sample in the API response
type UserMetricResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	MetricType string `json:"metricType"`
	Value      string `json:"value"`
	Date       string `json:"date"`
	CreatedAt  string `json:"createdAt"`
}

// CreateUserMetricRequest is the request body for recording a metric
type CreateUserMetricRequest struct {
	UserID     int64   `json:"userId"`
	MetricType string  `json:"metricType"`
	Value      string  `json:"value"`
	Date       *string `json:"date"`
}

// UpdateUserMetricRequest carries the mutable metric fields
type UpdateUserMetricRequest struct {
	MetricType *string `json:"metricType"`
	Value      *string `json:"value"`
	Date       *string `json:"date"`
}

// BadgeResponse represents an earned badge in the API response
type BadgeResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	BadgeID   string `json:"badgeId"`
	BadgeName string `json:"badgeName"`
	EarnedAt  string `json:"earnedAt"`
}

// CreateBadgeRequest is the request body for awarding a badge
type CreateBadgeRequest struct {
	UserID    int64  `json:"userId"`
	BadgeID   string `json:"badgeId"`
	BadgeName string `json:"badgeName"`
}

// UpdateBadgeRequest carries the mutable badge fields
type UpdateBadgeRequest struct {
	BadgeID   *string `json:"badgeId"`
	BadgeName *string `json:"badgeName"`
}

// UserStreakResponse represents a user's activity streak in the API response
type UserStreakResponse struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"userId"`
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	LastActivityDate *string `json:"lastActivityDate"`
	UpdatedAt        string  `json:"updatedAt"`
}

// CreateUserStreakRequest is the request body for initializing a streak row
type CreateUserStreakRequest struct {
	UserID           int64   `json:"userId"`
	CurrentStreak    *int    `json:"currentStreak"`
	LongestStreak    *int    `json:"longestStreak"`
	LastActivityDate *string `json:"lastActivityDate"`
}

// UpdateUserStreakRequest carries the mutable streak fields
type UpdateUserStreakRequest struct {
	CurrentStreak    *int    `json:"currentStreak"`
	LongestStreak    *int    `json:"longestStreak"`
	LastActivityDate *string `json:"lastActivityDate"`
}

// DailyTaskResponse represents a scheduled task in the API response
type DailyTaskResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	TaskName       string  `json:"taskName"`
	TaskTime       string  `json:"taskTime"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completionDate"`
}

// CreateDailyTaskRequest is the request body for scheduling a task
type CreateDailyTaskRequest struct {
	UserID   int64  `json:"userId"`
	TaskName string `json:"taskName"`
	TaskTime string `json:"taskTime"`
}

// UpdateDailyTaskRequest carries the mutable task fields. Setting Completed
// to true stamps the completion date and advances the user's streak.
type UpdateDailyTaskRequest struct {
	TaskName  *string `json:"taskName"`
	TaskTime  *string `json:"taskTime"`
	Completed *bool   `json:"completed"`
}

// NewUserMetricResponse maps a metric row to its API view.
func NewUserMetricResponse(m *models.UserMetric) UserMetricResponse {
	return UserMetricResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		MetricType: m.MetricType,
		Value:      m.Value,
		Date:       m.Date,
		CreatedAt:  m.CreatedAt,
	}
}

// NewUserMetricResponses maps a slice of metric rows to their API views.
func NewUserMetricResponses(rows []models.UserMetric) []UserMetricResponse {
	out := make([]UserMetricResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewUserMetricResponse(&rows[i]))
	}
	return out
}

// NewBadgeResponse maps a badge row to its API view.
func NewBadgeResponse(m *models.Badge) BadgeResponse {
	return BadgeResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		BadgeID:   m.BadgeID,
		BadgeName: m.BadgeName,
		EarnedAt:  m.EarnedAt,
	}
}

// NewBadgeResponses maps a slice of badge rows to their API views.
func NewBadgeResponses(rows []models.Badge) []BadgeResponse {
	out := make([]BadgeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewBadgeResponse(&rows[i]))
	}
	return out
}

// NewUserStreakResponse maps a streak row to its API view.
func NewUserStreakResponse(m *models.UserStreak) UserStreakResponse {
	return UserStreakResponse{
		ID:               m.ID,
		UserID:           m.UserID,
		CurrentStreak:    m.CurrentStreak,
		LongestStreak:    m.LongestStreak,
		LastActivityDate: nullableString(m.LastActivityDate),
		UpdatedAt:        m.UpdatedAt,
	}
}

// NewUserStreakResponses maps a slice of streak rows to their API views.
func NewUserStreakResponses(rows []models.UserStreak) []UserStreakResponse {
	out := make([]UserStreakResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewUserStreakResponse(&rows[i]))
	}
	return out
}

// NewDailyTaskResponse maps a task row to its API view.
func NewDailyTaskResponse(m *models.DailyTask) DailyTaskResponse {
	return DailyTaskResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		TaskName:       m.TaskName,
		TaskTime:       m.TaskTime,
		Completed:      m.Completed,
		CompletionDate: nullableString(m.CompletionDate),
	}
}

// NewDailyTaskResponses maps a slice of task rows to their API views.
func NewDailyTaskResponses(rows []models.DailyTask) []DailyTaskResponse {
	out := make([]DailyTaskResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewDailyTaskResponse(&rows[i]))
	}
	return out
}
