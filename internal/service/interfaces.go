package service

import (
	"context"

	"github.com/fadilmartias/ai-interviewer/internal/model"
)

// ChatRequest is a provider-neutral chat completion call.
type ChatRequest struct {
	Messages    []model.Message
	Temperature float64
	MaxTokens   int
	// JSONMode asks the provider to answer with a JSON object.
	JSONMode bool
}

type ChatServiceInterface interface {
	// Complete returns the first choice's text. An empty string with a nil
	// error means the provider answered with nothing.
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

type TranscriptionServiceInterface interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type SpeechResult struct {
	Filename string `json:"filename"`
	AudioURL string `json:"audioUrl"`
}

type SpeechServiceInterface interface {
	Synthesize(ctx context.Context, text string) (*SpeechResult, error)
}
