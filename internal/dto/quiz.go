package dto

import "balanceai/internal/repository/models"

// QuizAnswerResponse represents a stored quiz answer in the API response
type QuizAnswerResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	QuestionID  string `json:"questionId"`
	AnswerIndex int    `json:"answerIndex"`
	Category    string `json:"category"`
	CreatedAt   string `json:"createdAt"`
}

// QuizResultResponse represents a scored quiz outcome in the API response
type QuizResultResponse struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	BalanceScore   int    `json:"balanceScore"`
	MoodResult     string `json:"moodResult"`
	CognitiveScore int    `json:"cognitiveScore"`
	PhysicalScore  int    `json:"physicalScore"`
	DigitalScore   int    `json:"digitalScore"`
	CreatedAt      string `json:"createdAt"`
}

// SubmitAnswer is a single answer within a quiz submission
type SubmitAnswer struct {
	QuestionID  string `json:"questionId"`
	AnswerIndex *int   `json:"answerIndex"`
	Category    string `json:"category"`
}

// SubmitQuizRequest is the request body for submitting a completed quiz
type SubmitQuizRequest struct {
	UserID  int64          `json:"userId"`
	Answers []SubmitAnswer `json:"answers"`
}

// SubmitQuizResponse returns the scored result of a submission
type SubmitQuizResponse struct {
	Result    QuizResultResponse   `json:"result"`
	Responses []QuizAnswerResponse `json:"responses"`
}

// CreateQuizResponseRequest is the request body for recording one answer
type CreateQuizResponseRequest struct {
	UserID      int64  `json:"userId"`
	QuestionID  string `json:"questionId"`
	AnswerIndex *int   `json:"answerIndex"`
	Category    string `json:"category"`
}

// UpdateQuizResponseRequest carries the mutable answer fields
type UpdateQuizResponseRequest struct {
	QuestionID  *string `json:"questionId"`
	AnswerIndex *int    `json:"answerIndex"`
	Category    *string `json:"category"`
}

// CreateQuizResultRequest is the request body for recording a computed result
type CreateQuizResultRequest struct {
	UserID         int64  `json:"userId"`
	BalanceScore   *int   `json:"balanceScore"`
	MoodResult     string `json:"moodResult"`
	CognitiveScore *int   `json:"cognitiveScore"`
	PhysicalScore  *int   `json:"physicalScore"`
	DigitalScore   *int   `json:"digitalScore"`
}

// UpdateQuizResultRequest carries the mutable result fields
type UpdateQuizResultRequest struct {
	BalanceScore   *int    `json:"balanceScore"`
	MoodResult     *string `json:"moodResult"`
	CognitiveScore *int    `json:"cognitiveScore"`
	PhysicalScore  *int    `json:"physicalScore"`
	DigitalScore   *int    `json:"digitalScore"`
}

// NewQuizAnswerResponse maps a quiz response row to its API view.
func NewQuizAnswerResponse(m *models.QuizResponse) QuizAnswerResponse {
	return QuizAnswerResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		QuestionID:  m.QuestionID,
		AnswerIndex: m.AnswerIndex,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
	}
}

// NewQuizAnswerResponses maps a slice of quiz response rows to their API views.
func NewQuizAnswerResponses(rows []models.QuizResponse) []QuizAnswerResponse {
	out := make([]QuizAnswerResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewQuizAnswerResponse(&rows[i]))
	}
	return out
}

// NewQuizResultResponse maps a quiz result row to its API view.
func NewQuizResultResponse(m *models.QuizResult) QuizResultResponse {
	return QuizResultResponse{
		ID:             m.ID,
		UserID:         m.UserID,
		BalanceScore:   m.BalanceScore,
		MoodResult:     m.MoodResult,
		CognitiveScore: m.CognitiveScore,
		PhysicalScore:  m.PhysicalScore,
		DigitalScore:   m.DigitalScore,
		CreatedAt:      m.CreatedAt,
	}
}

// NewQuizResultResponses maps a slice of quiz result rows to their API views.
func NewQuizResultResponses(rows []models.QuizResult) []QuizResultResponse {
	out := make([]QuizResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, NewQuizResultResponse(&rows[i]))
	}
	return out
}
