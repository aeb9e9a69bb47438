package models

// QuizResponse is one answer to one question, immutable after creation
// except for admin correction.
type QuizResponse struct {
	ID          int64  `db:"id"`
	UserID      int64  `db:"user_id"`
	QuestionID  string `db:"question_id"`
	AnswerIndex int    `db:"answer_index"`
	Category    string `db:"category"`
	CreatedAt   string `db:"created_at"`
}

// QuizResult is one scored outcome of a quiz submission. A user accumulates
// one row per submission; the most recent row is the "current" result.
type QuizResult struct {
	ID             int64  `db:"id"`
	UserID         int64  `db:"user_id"`
	BalanceScore   int    `db:"balance_score"`
	MoodResult     string `db:"mood_result"`
	CognitiveScore int    `db:"cognitive_score"`
	PhysicalScore  int    `db:"physical_score"`
	DigitalScore   int    `db:"digital_score"`
	CreatedAt      string `db:"created_at"`
}
