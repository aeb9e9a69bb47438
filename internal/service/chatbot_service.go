package service

import (
	"context"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/logger"
	"balanceai/internal/validation"

	"go.uber.org/zap"
)

// ChatbotService answers wellness questions from a fixed keyword script.
type ChatbotService interface {
	Reply(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error)
}

type chatbotServiceImpl struct {
	validator *validation.Validator
}

// NewChatbotService creates a new instance of ChatbotService.
func NewChatbotService(validator *validation.Validator) ChatbotService {
	return &chatbotServiceImpl{validator: validator}
}

func (s *chatbotServiceImpl) Reply(ctx context.Context, req *dto.ChatMessageRequest) (*dto.ChatMessageResponse, error) {
	if errs := s.validator.ValidateChatMessage(req); len(errs) > 0 {
		return nil, errs
	}

	reply, rule := domain.ReplyTo(req.Message)
	logger.Get().Debug("Chatbot reply", zap.String("matchedRule", rule))

	return &dto.ChatMessageResponse{
		Reply:       reply,
		MatchedRule: rule,
	}, nil
}
