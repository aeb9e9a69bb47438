package service

import (
	"context"
	"testing"

	"balanceai/internal/domain"
	"balanceai/internal/dto"
	"balanceai/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatbotService_Reply(t *testing.T) {
	ctx := context.Background()
	svc := NewChatbotService(validation.NewValidator())

	t.Run("matched keyword", func(t *testing.T) {
		resp, err := svc.Reply(ctx, &dto.ChatMessageRequest{Message: "any tips for better sleep?"})

		require.NoError(t, err)
		assert.Equal(t, "sleep", resp.MatchedRule)
		assert.Contains(t, resp.Reply, "sleep schedule")
	})

	t.Run("fallback", func(t *testing.T) {
		resp, err := svc.Reply(ctx, &dto.ChatMessageRequest{Message: "tell me a joke"})

		require.NoError(t, err)
		assert.Empty(t, resp.MatchedRule)
		assert.Equal(t, domain.ChatFallbackReply, resp.Reply)
	})

	t.Run("blank message is rejected", func(t *testing.T) {
		resp, err := svc.Reply(ctx, &dto.ChatMessageRequest{Message: "  "})

		assert.Nil(t, resp)
		var validationErrs domain.ValidationErrors
		require.ErrorAs(t, err, &validationErrs)
	})
}
