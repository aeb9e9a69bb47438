package service

import (
	"context"
	"fmt"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/logger"
	"balanceai/internal/repository"
	"balanceai/internal/repository/models"
	"balanceai/internal/util"
	"balanceai/internal/validation"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz submission and record keeping.
type QuizService interface {
	SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error)

	CreateResponse(ctx context.Context, req *dto.CreateQuizResponseRequest) (*dto.QuizAnswerResponse, error)
	GetResponse(ctx context.Context, id int64) (*dto.QuizAnswerResponse, error)
	ListResponses(ctx context.Context, userID *int64, limit, offset int) ([]dto.QuizAnswerResponse, error)
	UpdateResponse(ctx context.Context, id int64, req *dto.UpdateQuizResponseRequest) (*dto.QuizAnswerResponse, error)
	DeleteResponse(ctx context.Context, id int64) error

	CreateResult(ctx context.Context, req *dto.CreateQuizResultRequest) (*dto.QuizResultResponse, error)
	GetResult(ctx context.Context, id int64) (*dto.QuizResultResponse, error)
	GetLatestResult(ctx context.Context, userID int64) (*dto.QuizResultResponse, error)
	ListResults(ctx context.Context, userID *int64, limit, offset int) ([]dto.QuizResultResponse, error)
	UpdateResult(ctx context.Context, id int64, req *dto.UpdateQuizResultRequest) (*dto.QuizResultResponse, error)
	DeleteResult(ctx context.Context, id int64) error
}

type quizServiceImpl struct {
	quizRepo  repository.QuizRepository
	userRepo  repository.UserRepository
	txManager domain.TransactionManager
	validator *validation.Validator
}

// NewQuizService creates a new instance of QuizService.
func NewQuizService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	txManager domain.TransactionManager,
	validator *validation.Validator,
) QuizService {
	return &quizServiceImpl{
		quizRepo:  quizRepo,
		userRepo:  userRepo,
		txManager: txManager,
		validator: validator,
	}
}

// SubmitQuiz scores a completed onboarding quiz and persists every answer
// plus the computed result in a single transaction. The shared timestamp
// ties the batch together.
func (s *quizServiceImpl) SubmitQuiz(ctx context.Context, req *dto.SubmitQuizRequest) (*dto.SubmitQuizResponse, error) {
	if errs := s.validator.ValidateSubmitQuiz(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	answers := make([]domain.QuizAnswer, len(req.Answers))
	for i, a := range req.Answers {
		answers[i] = domain.QuizAnswer{
			QuestionID:  a.QuestionID,
			AnswerIndex: *a.AnswerIndex,
			Category:    a.Category,
		}
	}
	score := domain.ScoreSubmission(answers)

	now := util.NowRFC3339()
	responses := make([]models.QuizResponse, len(req.Answers))
	result := &models.QuizResult{
		UserID:         req.UserID,
		BalanceScore:   score.BalanceScore,
		MoodResult:     string(score.MoodResult),
		CognitiveScore: score.CognitiveScore,
		PhysicalScore:  score.PhysicalScore,
		DigitalScore:   score.DigitalScore,
		CreatedAt:      now,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		for i, a := range req.Answers {
			resp := models.QuizResponse{
				UserID:      req.UserID,
				QuestionID:  a.QuestionID,
				AnswerIndex: *a.AnswerIndex,
				Category:    a.Category,
				CreatedAt:   now,
			}
			id, err := s.quizRepo.CreateResponse(txCtx, &resp)
			if err != nil {
				return fmt.Errorf("failed to persist answer %s: %w", a.QuestionID, err)
			}
			resp.ID = id
			responses[i] = resp
		}

		id, err := s.quizRepo.CreateResult(txCtx, result)
		if err != nil {
			return fmt.Errorf("failed to persist quiz result: %w", err)
		}
		result.ID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Quiz submission scored",
		zap.Int64("userID", req.UserID),
		zap.Int("answers", len(req.Answers)),
		zap.Int("balanceScore", score.BalanceScore),
		zap.String("moodResult", string(score.MoodResult)))

	return &dto.SubmitQuizResponse{
		Result:    dto.NewQuizResultResponse(result),
		Responses: dto.NewQuizAnswerResponses(responses),
	}, nil
}

func (s *quizServiceImpl) CreateResponse(ctx context.Context, req *dto.CreateQuizResponseRequest) (*dto.QuizAnswerResponse, error) {
	if errs := s.validator.ValidateCreateQuizResponse(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	resp := &models.QuizResponse{
		UserID:      req.UserID,
		QuestionID:  req.QuestionID,
		AnswerIndex: *req.AnswerIndex,
		Category:    req.Category,
		CreatedAt:   util.NowRFC3339(),
	}

	id, err := s.quizRepo.CreateResponse(ctx, resp)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz response: %w", err)
	}
	resp.ID = id

	out := dto.NewQuizAnswerResponse(resp)
	return &out, nil
}

func (s *quizServiceImpl) GetResponse(ctx context.Context, id int64) (*dto.QuizAnswerResponse, error) {
	resp, err := s.quizRepo.GetResponseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz response: %w", err)
	}
	if resp == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "quiz response not found")
	}

	out := dto.NewQuizAnswerResponse(resp)
	return &out, nil
}

func (s *quizServiceImpl) ListResponses(ctx context.Context, userID *int64, limit, offset int) ([]dto.QuizAnswerResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.quizRepo.ListResponses(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz responses: %w", err)
	}

	return dto.NewQuizAnswerResponses(rows), nil
}

func (s *quizServiceImpl) UpdateResponse(ctx context.Context, id int64, req *dto.UpdateQuizResponseRequest) (*dto.QuizAnswerResponse, error) {
	resp, err := s.quizRepo.GetResponseByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz response: %w", err)
	}
	if resp == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "quiz response not found")
	}

	if req.QuestionID == nil && req.AnswerIndex == nil && req.Category == nil {
		out := dto.NewQuizAnswerResponse(resp)
		return &out, nil
	}

	if req.QuestionID != nil {
		resp.QuestionID = *req.QuestionID
	}
	if req.AnswerIndex != nil {
		resp.AnswerIndex = *req.AnswerIndex
	}
	if req.Category != nil {
		resp.Category = *req.Category
	}

	if err := s.quizRepo.UpdateResponse(ctx, resp); err != nil {
		return nil, fmt.Errorf("failed to update quiz response: %w", err)
	}

	out := dto.NewQuizAnswerResponse(resp)
	return &out, nil
}

func (s *quizServiceImpl) DeleteResponse(ctx context.Context, id int64) error {
	deleted, err := s.quizRepo.DeleteResponse(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz response: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "quiz response not found")
	}
	return nil
}

func (s *quizServiceImpl) CreateResult(ctx context.Context, req *dto.CreateQuizResultRequest) (*dto.QuizResultResponse, error) {
	if errs := s.validator.ValidateCreateQuizResult(req); len(errs) > 0 {
		return nil, errs
	}

	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.CodeUserNotFound, "user not found")
	}

	result := &models.QuizResult{
		UserID:       req.UserID,
		BalanceScore: *req.BalanceScore,
		MoodResult:   req.MoodResult,
		CreatedAt:    util.NowRFC3339(),
	}
	if req.CognitiveScore != nil {
		result.CognitiveScore = *req.CognitiveScore
	}
	if req.PhysicalScore != nil {
		result.PhysicalScore = *req.PhysicalScore
	}
	if req.DigitalScore != nil {
		result.DigitalScore = *req.DigitalScore
	}

	id, err := s.quizRepo.CreateResult(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz result: %w", err)
	}
	result.ID = id

	out := dto.NewQuizResultResponse(result)
	return &out, nil
}

func (s *quizServiceImpl) GetResult(ctx context.Context, id int64) (*dto.QuizResultResponse, error) {
	result, err := s.quizRepo.GetResultByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result: %w", err)
	}
	if result == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "quiz result not found")
	}

	out := dto.NewQuizResultResponse(result)
	return &out, nil
}

func (s *quizServiceImpl) GetLatestResult(ctx context.Context, userID int64) (*dto.QuizResultResponse, error) {
	result, err := s.quizRepo.GetLatestResultByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest quiz result: %w", err)
	}
	if result == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "quiz result not found")
	}

	out := dto.NewQuizResultResponse(result)
	return &out, nil
}

func (s *quizServiceImpl) ListResults(ctx context.Context, userID *int64, limit, offset int) ([]dto.QuizResultResponse, error) {
	limit, offset = s.validator.NormalizePagination(limit, offset)

	rows, err := s.quizRepo.ListResults(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quiz results: %w", err)
	}

	return dto.NewQuizResultResponses(rows), nil
}

func (s *quizServiceImpl) UpdateResult(ctx context.Context, id int64, req *dto.UpdateQuizResultRequest) (*dto.QuizResultResponse, error) {
	result, err := s.quizRepo.GetResultByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz result: %w", err)
	}
	if result == nil {
		return nil, domain.NewNotFoundError(domain.CodeNotFound, "quiz result not found")
	}

	if req.BalanceScore == nil && req.MoodResult == nil && req.CognitiveScore == nil &&
		req.PhysicalScore == nil && req.DigitalScore == nil {
		out := dto.NewQuizResultResponse(result)
		return &out, nil
	}

	if req.MoodResult != nil {
		if !domain.IsValidMoodResult(*req.MoodResult) {
			return nil, domain.ValidationErrors{
				domain.NewFieldError("moodResult", "INVALID_MOOD_RESULT", "unknown mood result"),
			}
		}
		result.MoodResult = *req.MoodResult
	}
	if req.BalanceScore != nil {
		result.BalanceScore = *req.BalanceScore
	}
	if req.CognitiveScore != nil {
		result.CognitiveScore = *req.CognitiveScore
	}
	if req.PhysicalScore != nil {
		result.PhysicalScore = *req.PhysicalScore
	}
	if req.DigitalScore != nil {
		result.DigitalScore = *req.DigitalScore
	}

	if err := s.quizRepo.UpdateResult(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to update quiz result: %w", err)
	}

	out := dto.NewQuizResultResponse(result)
	return &out, nil
}

func (s *quizServiceImpl) DeleteResult(ctx context.Context, id int64) error {
	deleted, err := s.quizRepo.DeleteResult(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz result: %w", err)
	}
	if !deleted {
		return domain.NewNotFoundError(domain.CodeNotFound, "quiz result not found")
	}
	return nil
}
