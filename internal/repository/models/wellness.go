package models

// WellnessGoal is a user's selected focus area.
type WellnessGoal struct {
	ID         int64  `db:"id"`
	UserID     int64  `db:"user_id"`
	GoalID     string `db:"goal_id"`
	GoalTitle  string `db:"goal_title"`
	SelectedAt string `db:"selected_at"`
}

// WellnessPlan holds generated plan content as a JSON document. The most
// recent row per user is the active plan.
type WellnessPlan struct {
	ID        int64  `db:"id"`
	UserID    int64  `db:"user_id"`
	PlanData  string `db:"plan_data"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}
