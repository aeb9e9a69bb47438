package dto

import "balanceai/internal/repository/models"

// WellnessGoalResponse represents a selected goal in the API response
type WellnessGoalResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	GoalID     string `json:"goalId"`
	GoalTitle  string `json:"goalTitle"`
	SelectedAt string `json:"selectedAt"`
}

// CreateWellnessGoalRequest is the request body for selecting a goal
type CreateWellnessGoalRequest struct {
	UserID    int64  `json:"userId"`
	GoalID    string `json:"goalId"`
	GoalTitle string `json:"goalTitle"`
}

// UpdateWellnessGoalRequest carries the mutable goal fields
type UpdateWellnessGoalRequest struct {
	GoalID    *string `json:"goalId"`
	GoalTitle *string `json:"goalTitle"`
}

// WellnessPlanResponse represents a generated plan in the API response.
// PlanData is a JSON document produced at plan creation time.
type WellnessPlanResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	PlanData  string `json:"planData"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreateWellnessPlanRequest is the request body for storing a plan
type CreateWellnessPlanRequest struct {
	UserID   int64  `json:"userId"`
	PlanData string `json:"planData"`
}

// UpdateWellnessPlanRequest carries the mutable plan fields
type UpdateWellnessPlanRequest struct {
	PlanData *string `json:"planData"`
}

// NewWellnessGoalResponse maps a goal row to its API view.
func NewWellnessGoalResponse(m *models.WellnessGoal) WellnessGoalResponse {
	return WellnessGoalResponse{
		ID:         m.ID,
		UserID:     m.UserID,
		GoalID:     m.GoalID,
		GoalTitle:  m.GoalTitle,
		SelectedAt: m.SelectedAt,
	}
}

// NewWellnessGoalResponses maps a slice of goal rows to their API views.
func NewWellnessGoalResponses(rows []models.WellnessGoal) []WellnessGoalResponse {
	out := make([]WellnessGoalResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewWellnessGoalResponse(&rows[i]))
	}
	return out
}

// NewWellnessPlanResponse maps a plan row to its API view.
func NewWellnessPlanResponse(m *models.WellnessPlan) WellnessPlanResponse {
	return WellnessPlanResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		PlanData:  m.PlanData,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NewWellnessPlanResponses maps a slice of plan rows to their API views.
func NewWellnessPlanResponses(rows []models.WellnessPlan) []WellnessPlanResponse {
	out := make([]WellnessPlanResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewWellnessPlanResponse(&rows[i]))
	}
	return out
}
