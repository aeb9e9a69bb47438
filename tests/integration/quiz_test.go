package integration

import (
	"fmt"
	"testing"

	"balanceai/internal/dto"
	"balanceai/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitQuizFlow(t *testing.T) {
	user := createTestUser(t, "quiz")

	body := fmt.Sprintf(`{"userId":%d,"answers":[
		{"questionId":"q1","answerIndex":2,"category":"cognitive"},
		{"questionId":"q2","answerIndex":0,"category":"cognitive"},
		{"questionId":"q3","answerIndex":1,"category":"cognitive"},
		{"questionId":"q4","answerIndex":3,"category":"physical"},
		{"questionId":"q5","answerIndex":1,"category":"physical"},
		{"questionId":"q6","answerIndex":0,"category":"physical"},
		{"questionId":"q7","answerIndex":2,"category":"digital"},
		{"questionId":"q8","answerIndex":1,"category":"digital"},
		{"questionId":"q9","answerIndex":2,"category":"digital"}
	]}`, user.ID)

	status, raw := doRequest(t, "POST", "/api/quiz/submit", body)
	require.Equal(t, fiber.StatusCreated, status, "body: %s", raw)

	var submitted dto.SubmitQuizResponse
	decodeJSON(t, raw, &submitted)
	assert.Equal(t, 3, submitted.Result.CognitiveScore)
	assert.Equal(t, 3, submitted.Result.PhysicalScore)
	assert.Equal(t, 3, submitted.Result.DigitalScore)
	assert.Equal(t, 9, submitted.Result.BalanceScore)
	assert.Equal(t, "Needs Attention", submitted.Result.MoodResult)
	assert.Len(t, submitted.Responses, 9)

	t.Run("Latest Result", func(t *testing.T) {
		status, raw := doRequest(t, "GET", fmt.Sprintf("/api/quiz-results?userId=%d&latest=true", user.ID), "")
		require.Equal(t, fiber.StatusOK, status, "body: %s", raw)

		var latest dto.QuizResultResponse
		decodeJSON(t, raw, &latest)
		assert.Equal(t, submitted.Result.ID, latest.ID)
		assert.Equal(t, 9, latest.BalanceScore)
	})

	t.Run("Stored Answers", func(t *testing.T) {
		status, raw := doRequest(t, "GET", fmt.Sprintf("/api/quiz-responses?userId=%d", user.ID), "")
		require.Equal(t, fiber.StatusOK, status, "body: %s", raw)

		var answers []dto.QuizAnswerResponse
		decodeJSON(t, raw, &answers)
		assert.Len(t, answers, 9)
	})

	t.Run("Quiz Result Alone Leaves Dashboard Empty", func(t *testing.T) {
		status, raw := doRequest(t, "GET", fmt.Sprintf("/api/users/%d/dashboard", user.ID), "")
		assert.Equal(t, fiber.StatusNotFound, status, "body: %s", raw)

		var errResp middleware.ErrorResponse
		decodeJSON(t, raw, &errResp)
		assert.Equal(t, "USER_DATA_NOT_FOUND", errResp.Code)
	})

	t.Run("Dashboard Includes Result", func(t *testing.T) {
		metricBody := fmt.Sprintf(`{"userId":%d,"metricType":"mood","value":"okay"}`, user.ID)
		status, raw := doRequest(t, "POST", "/api/user-metrics", metricBody)
		require.Equal(t, fiber.StatusCreated, status, "body: %s", raw)

		status, raw = doRequest(t, "GET", fmt.Sprintf("/api/users/%d/dashboard", user.ID), "")
		require.Equal(t, fiber.StatusOK, status, "body: %s", raw)

		var dashboard dto.DashboardResponse
		decodeJSON(t, raw, &dashboard)
		require.NotNil(t, dashboard.QuizResult)
		assert.Equal(t, 9, dashboard.QuizResult.BalanceScore)
		assert.Len(t, dashboard.Metrics, 1)
	})
}

func TestSubmitQuizValidation(t *testing.T) {
	user := createTestUser(t, "quiz-invalid")

	t.Run("No Answers", func(t *testing.T) {
		body := fmt.Sprintf(`{"userId":%d,"answers":[]}`, user.ID)
		status, raw := doRequest(t, "POST", "/api/quiz/submit", body)
		assert.Equal(t, fiber.StatusBadRequest, status, "body: %s", raw)
	})

	t.Run("Unknown User", func(t *testing.T) {
		status, raw := doRequest(t, "POST", "/api/quiz/submit", `{"userId":999999,"answers":[{"questionId":"q1","answerIndex":1,"category":"cognitive"}]}`)
		assert.Equal(t, fiber.StatusNotFound, status, "body: %s", raw)
	})
}
