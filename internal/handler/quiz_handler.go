package handler

import (
	"balanceai/internal/dto"
	"balanceai/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz submissions and their stored records.
type QuizHandler struct {
	quizService service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance.
func NewQuizHandler(quizService service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// SubmitQuiz handles POST /api/quiz/submit. It scores the batch and
// persists all answers plus the result atomically.
func (h *QuizHandler) SubmitQuiz(c *fiber.Ctx) error {
	var req dto.SubmitQuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.quizService.SubmitQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetResponses handles GET /api/quiz-responses.
func (h *QuizHandler) GetResponses(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		resp, err := h.quizService.GetResponse(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}
	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	responses, err := h.quizService.ListResponses(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(responses)
}

// CreateResponse handles POST /api/quiz-responses.
func (h *QuizHandler) CreateResponse(c *fiber.Ctx) error {
	var req dto.CreateQuizResponseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.quizService.CreateResponse(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateResponse handles PUT /api/quiz-responses?id=.
func (h *QuizHandler) UpdateResponse(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuizResponseRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	resp, err := h.quizService.UpdateResponse(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteResponse handles DELETE /api/quiz-responses?id=.
func (h *QuizHandler) DeleteResponse(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.quizService.DeleteResponse(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "quiz response deleted"})
}

// GetResults handles GET /api/quiz-results. ?latest=true with ?userId=
// returns only the most recent result for that user.
func (h *QuizHandler) GetResults(c *fiber.Ctx) error {
	if c.Query("id") != "" {
		id, err := requiredIDQuery(c)
		if err != nil {
			return err
		}
		result, err := h.quizService.GetResult(c.Context(), id)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}

	userID, err := optionalInt64Query(c, "userId")
	if err != nil {
		return err
	}

	if c.Query("latest") == "true" && userID != nil {
		result, err := h.quizService.GetLatestResult(c.Context(), *userID)
		if err != nil {
			return err
		}
		return c.JSON(result)
	}

	limit, offset, err := paginationQuery(c, 0)
	if err != nil {
		return err
	}

	results, err := h.quizService.ListResults(c.Context(), userID, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(results)
}

// CreateResult handles POST /api/quiz-results.
func (h *QuizHandler) CreateResult(c *fiber.Ctx) error {
	var req dto.CreateQuizResultRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.quizService.CreateResult(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// UpdateResult handles PUT /api/quiz-results?id=.
func (h *QuizHandler) UpdateResult(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	var req dto.UpdateQuizResultRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	result, err := h.quizService.UpdateResult(c.Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// DeleteResult handles DELETE /api/quiz-results?id=.
func (h *QuizHandler) DeleteResult(c *fiber.Ctx) error {
	id, err := requiredIDQuery(c)
	if err != nil {
		return err
	}

	if err := h.quizService.DeleteResult(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.DeleteResponse{Message: "quiz result deleted"})
}
