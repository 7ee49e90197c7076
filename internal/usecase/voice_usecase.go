package usecase

import (
	"context"

	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/metrics"
	"github.com/fadilmartias/ai-interviewer/internal/service"
)

// SampleSpeechText is voiced by the speech self-test endpoint.
const SampleSpeechText = "Hello! This is a test of the AI Interviewer voice generation system. Welcome to your interview."

type VoiceUsecase struct {
	speech service.SpeechServiceInterface
}

func NewVoiceUsecase(speech service.SpeechServiceInterface) *VoiceUsecase {
	return &VoiceUsecase{speech: speech}
}

func (uc *VoiceUsecase) Generate(ctx context.Context, text string) (*service.SpeechResult, error) {
	if text == "" {
		return nil, apperror.Validation(apperror.CodeMissingInput, "Text is required")
	}
	result, err := uc.speech.Synthesize(ctx, text)
	if err != nil {
		metrics.ProviderFailed("synthesis")
		return nil, apperror.Upstream(apperror.CodeSynthesisFailed, "failed to generate speech", err)
	}
	return result, nil
}
