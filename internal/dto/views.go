package dto

// DashboardResponse aggregates a user's wellness state for the home screen.
// Individual sections are empty or nil when the user has no data for them;
// the endpoint errors only when every section is empty.
type DashboardResponse struct {
	UserID     int64                `json:"userId"`
	QuizResult *QuizResultResponse  `json:"quizResult"`
	Metrics    []UserMetricResponse `json:"metrics"`
	Badges     []BadgeResponse      `json:"badges"`
	BadgeCount int                  `json:"badgeCount"`
	Streak     *UserStreakResponse  `json:"streak"`
	Tasks      []DailyTaskResponse  `json:"tasks"`
}

// WellnessPlanViewResponse pairs a user's selected goals with their most
// recent generated plan.
type WellnessPlanViewResponse struct {
	UserID int64                  `json:"userId"`
	Goals  []WellnessGoalResponse `json:"goals"`
	Plan   WellnessPlanResponse   `json:"plan"`
}
