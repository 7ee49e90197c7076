package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// NewGroqClient returns a resty client for the OpenAI-compatible Groq API.
// Chat and transcription share it.
func NewGroqClient(cfg *config.GroqConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetHeader("Accept", "application/json")
}

type GroqChatService struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewGroqChatService(client *resty.Client, model string, logger *zap.Logger) *GroqChatService {
	return &GroqChatService{client: client, model: model, logger: logger}
}

func (s *GroqChatService) Complete(ctx context.Context, req ChatRequest) (string, error) {
	messages := make([]map[string]string, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, map[string]string{"role": m.Role, "content": m.Content})
	}

	payload := map[string]any{
		"model":       s.model,
		"messages":    messages,
		"temperature": req.Temperature,
		"stream":      false,
	}
	if req.MaxTokens > 0 {
		payload["max_tokens"] = req.MaxTokens
	}
	if req.JSONMode {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("chat provider returned %d: %s", resp.StatusCode(), providerMessage(resp.Body()))
	}

	text := gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
	s.logger.Debug("chat completion received",
		zap.String("model", s.model),
		zap.Int("messages", len(req.Messages)),
		zap.Int("chars", len(text)))
	return text, nil
}

type GroqTranscriptionService struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

func NewGroqTranscriptionService(client *resty.Client, model string, logger *zap.Logger) *GroqTranscriptionService {
	return &GroqTranscriptionService{client: client, model: model, logger: logger}
}

func (s *GroqTranscriptionService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFile("file", audioPath).
		SetFormData(map[string]string{
			"model":           s.model,
			"response_format": "json",
			"language":        "en",
			"temperature":     "0",
		}).
		Post("/audio/transcriptions")
	if err != nil {
		return "", fmt.Errorf("failed to transcribe audio: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("failed to transcribe audio: provider returned %d: %s", resp.StatusCode(), providerMessage(resp.Body()))
	}

	text := gjson.GetBytes(resp.Body(), "text").String()
	s.logger.Debug("transcription received", zap.String("model", s.model), zap.Int("chars", len(text)))
	return text, nil
}

func providerMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "error.message"); msg.Exists() {
		return msg.String()
	}
	return string(body)
}

var _ ChatServiceInterface = (*GroqChatService)(nil)
var _ TranscriptionServiceInterface = (*GroqTranscriptionService)(nil)
