package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// NewChatService picks the chat backend named by CHAT_PROVIDER.
func NewChatService(ctx context.Context, groqClient *resty.Client, groq *config.GroqConfig, gemini *config.GeminiConfig, logger *zap.Logger) (ChatServiceInterface, error) {
	switch groq.ChatProvider {
	case config.ProviderGroq, "":
		return NewGroqChatService(groqClient, groq.ChatModel, logger), nil
	case config.ProviderGemini:
		svc, err := NewGeminiChatService(ctx, gemini, logger)
		if err != nil {
			return nil, err
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unsupported chat provider: %s", groq.ChatProvider)
	}
}
