package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GeminiChatService is the alternative chat backend, selected with
// CHAT_PROVIDER=gemini. Transcription always goes through Groq.
type GeminiChatService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
	logger         *zap.Logger
}

func NewGeminiChatService(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiChatService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiChatService{
		Client:         client,
		Model:          cfg.Model,
		RequestTimeout: 90 * time.Second,
		logger:         logger,
	}, nil
}

func (s *GeminiChatService) Complete(ctx context.Context, req ChatRequest) (string, error) {
	contents, genConfig := geminiRequest(req)
	if len(contents) == 0 {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		s.logger.Warn("gemini returned no usable content", zap.Error(err))
		return "", nil
	}
	return result.Text(), nil
}

// geminiRequest maps the system message onto SystemInstruction and the rest
// of the history onto user/model contents.
func geminiRequest(req ChatRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(req.Temperature)),
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.JSONMode {
		genConfig.ResponseMIMEType = "application/json"
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		if m.Role == model.RoleSystem {
			genConfig.SystemInstruction = genai.NewContentFromText(m.Content, genai.RoleUser)
			continue
		}
		if m.Role == model.RoleAssistant {
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		} else {
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return contents, genConfig
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}

	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}

	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}

	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}

	return nil
}

var _ ChatServiceInterface = (*GeminiChatService)(nil)
