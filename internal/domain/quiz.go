package domain

import "strings"

// MoodResult is the categorical wellness label derived from a balance score
type MoodResult string

const (
	MoodBalanced       MoodResult = "Balanced"
	MoodNeedsAttention MoodResult = "Needs Attention"
	MoodOverloaded     MoodResult = "Overloaded"
)

// IsValidMoodResult reports whether s is one of the three defined labels
func IsValidMoodResult(s string) bool {
	switch MoodResult(s) {
	case MoodBalanced, MoodNeedsAttention, MoodOverloaded:
		return true
	}
	return false
}

// QuizAnswer is one answer in a quiz submission batch
type QuizAnswer struct {
	QuestionID  string
	AnswerIndex int
	Category    string
}

// QuizScore is the scored outcome of one submission
type QuizScore struct {
	CognitiveScore int
	PhysicalScore  int
	DigitalScore   int
	BalanceScore   int
	MoodResult     MoodResult
}

// Mood thresholds on the balance score
const (
	balancedThreshold  = 15
	attentionThreshold = 8
)

// ScoreSubmission tallies one point per answer into the matching category
// bucket (case-insensitive). Categories outside the three buckets count
// toward no sub-score.
func ScoreSubmission(answers []QuizAnswer) QuizScore {
	var score QuizScore
	for _, a := range answers {
		switch strings.ToLower(a.Category) {
		case "cognitive":
			score.CognitiveScore++
		case "physical":
			score.PhysicalScore++
		case "digital":
			score.DigitalScore++
		}
	}
	score.BalanceScore = score.CognitiveScore + score.PhysicalScore + score.DigitalScore
	score.MoodResult = MoodForBalanceScore(score.BalanceScore)
	return score
}

// MoodForBalanceScore applies the fixed mood thresholds
func MoodForBalanceScore(balance int) MoodResult {
	switch {
	case balance >= balancedThreshold:
		return MoodBalanced
	case balance >= attentionThreshold:
		return MoodNeedsAttention
	default:
		return MoodOverloaded
	}
}
