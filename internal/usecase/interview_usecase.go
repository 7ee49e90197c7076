package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/analysis"
	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/metrics"
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/fadilmartias/ai-interviewer/internal/prompt"
	"github.com/fadilmartias/ai-interviewer/internal/repository"
	"github.com/fadilmartias/ai-interviewer/internal/response"
	"github.com/fadilmartias/ai-interviewer/internal/service"
	"go.uber.org/zap"
)

const (
	turnTemperature     = 0.7
	turnMaxTokens       = 150
	analysisTemperature = 0.2

	DefaultPageSize = 20
)

// TurnInput carries one recorded answer. The JSON fields arrive as raw form
// values and may be empty or malformed.
type TurnInput struct {
	AudioPath      string
	HistoryJSON    string
	ContextJSON    string
	JobContextJSON string
}

type TurnResult struct {
	UserTranscript string
	AITranscript   string
	AudioURL       string
	Filename       string
}

type InterviewUsecase struct {
	chat        service.ChatServiceInterface
	transcriber service.TranscriptionServiceInterface
	speech      service.SpeechServiceInterface
	interviews  repository.InterviewStore
	logger      *zap.Logger
}

func NewInterviewUsecase(chat service.ChatServiceInterface, transcriber service.TranscriptionServiceInterface, speech service.SpeechServiceInterface, interviews repository.InterviewStore, logger *zap.Logger) *InterviewUsecase {
	return &InterviewUsecase{chat: chat, transcriber: transcriber, speech: speech, interviews: interviews, logger: logger}
}

// ProcessTurn transcribes the answer, asks the interviewer for a reply and
// voices it. Each step fails the turn on error; nothing is retried. The
// caller owns the audio file.
func (uc *InterviewUsecase) ProcessTurn(ctx context.Context, in TurnInput) (*TurnResult, error) {
	if in.AudioPath == "" {
		return nil, apperror.Validation(apperror.CodeMissingInput, "Please upload an audio file")
	}

	userTranscript, err := uc.Transcribe(ctx, in.AudioPath)
	if err != nil {
		metrics.TurnFailed()
		return nil, err
	}
	uc.logger.Debug("transcribed turn", zap.Int("chars", len(userTranscript)))

	history := decodeField[[]model.Message](uc.logger, "history", in.HistoryJSON)
	resume := decodeField[*model.ResumeContext](uc.logger, "context", in.ContextJSON)
	job := decodeField[*model.JobContext](uc.logger, "jobContext", in.JobContextJSON)

	aiTranscript, err := uc.reply(ctx, userTranscript, history, resume, job)
	if err != nil {
		metrics.TurnFailed()
		return nil, err
	}

	speech, err := uc.speech.Synthesize(ctx, aiTranscript)
	if err != nil {
		metrics.TurnFailed()
		metrics.ProviderFailed("synthesis")
		return nil, apperror.Upstream(apperror.CodeSynthesisFailed, "failed to generate speech", err)
	}

	metrics.TurnCompleted()
	return &TurnResult{
		UserTranscript: userTranscript,
		AITranscript:   aiTranscript,
		AudioURL:       speech.AudioURL,
		Filename:       speech.Filename,
	}, nil
}

func (uc *InterviewUsecase) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if audioPath == "" {
		return "", apperror.Validation(apperror.CodeMissingInput, "Please upload an audio file")
	}
	text, err := uc.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		metrics.ProviderFailed("transcription")
		return "", apperror.Upstream(apperror.CodeTranscriptionFailed, "failed to transcribe audio", err)
	}
	return text, nil
}

// Chat is a single interviewer reply without audio.
func (uc *InterviewUsecase) Chat(ctx context.Context, req dto.ChatRequest) (string, error) {
	if req.Message == "" {
		return "", apperror.Validation(apperror.CodeMissingInput, "Please provide a message")
	}
	return uc.reply(ctx, req.Message, req.History, req.Context, req.JobContext)
}

func (uc *InterviewUsecase) reply(ctx context.Context, userMessage string, history []model.Message, resume *model.ResumeContext, job *model.JobContext) (string, error) {
	messages := make([]model.Message, 0, len(history)+2)
	messages = append(messages, model.Message{
		Role:    model.RoleSystem,
		Content: prompt.BuildInterviewPrompt(prompt.InterviewerPersona, job, resume),
	})
	for _, msg := range history {
		messages = append(messages, model.Message{Role: msg.Role, Content: msg.Content})
	}
	messages = append(messages, model.Message{Role: model.RoleUser, Content: userMessage})

	text, err := uc.chat.Complete(ctx, service.ChatRequest{
		Messages:    messages,
		Temperature: turnTemperature,
		MaxTokens:   turnMaxTokens,
	})
	if err != nil {
		metrics.ProviderFailed("chat")
		return "", apperror.Upstream(apperror.CodeChatFailed, "failed to get AI response", err)
	}
	if text == "" {
		return "", &apperror.Error{Kind: apperror.KindUpstream, Code: apperror.CodeEmptyAIResponse, Message: "Empty response from AI"}
	}
	return text, nil
}

// decodeField returns the zero value when raw is empty or does not decode
// into T.
func decodeField[T any](logger *zap.Logger, field, raw string) T {
	var v T
	if raw == "" {
		return v
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		logger.Warn("ignoring malformed form field", zap.String("field", field), zap.Error(err))
		var zero T
		return zero
	}
	return v
}

// Analyze scores a finished interview and stores the result. A store failure
// is logged and the report is still returned. Zero scores are saved as
// analysis.DefaultScore.
func (uc *InterviewUsecase) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*model.ScoreReport, error) {
	if len(req.History) == 0 {
		return nil, apperror.Validation(apperror.CodeMissingInput, "Please provide the interview conversation history")
	}

	raw, err := uc.chat.Complete(ctx, service.ChatRequest{
		Messages: []model.Message{
			{Role: model.RoleSystem, Content: prompt.BuildAnalysisPrompt(req.JobContext)},
			{Role: model.RoleUser, Content: prompt.AnalysisUserMessage(req.History)},
		},
		Temperature: analysisTemperature,
		JSONMode:    true,
	})
	if err != nil {
		metrics.ProviderFailed("analysis")
		return nil, apperror.Upstream(apperror.CodeAnalysisFailed, "failed to analyze interview", err)
	}

	parsed := analysis.Valid(raw)
	if !parsed {
		uc.logger.Warn("analysis reply is not valid JSON", zap.String("reply", raw))
	}
	metrics.AnalysisCompleted(parsed)
	report := analysis.Normalize(raw)

	interview := &model.Interview{
		CandidateName:      orDefault(req.CandidateName, model.DefaultCandidateName),
		JobRole:            orDefault(req.JobRole, model.DefaultJobRole),
		Difficulty:         orDefault(req.Difficulty, model.NotApplicable),
		Duration:           orDefault(req.Duration, model.NotApplicable),
		TechnicalScore:     storedScore(report.TechnicalScore),
		CommunicationScore: storedScore(report.CommunicationScore),
		ConfidenceScore:    storedScore(report.ConfidenceScore),
		Feedback:           report.Feedback,
		CreatedAt:          time.Now(),
	}
	if err := uc.interviews.CreateInterview(ctx, interview); err != nil {
		metrics.PersistenceFailed()
		uc.logger.Error("failed to save interview",
			zap.String("candidate", interview.CandidateName),
			zap.Error(apperror.Persistence("interview not saved", err)))
	} else {
		uc.logger.Info("interview saved", zap.String("id", interview.ID.String()))
	}

	return &report, nil
}

// ListInterviews returns summaries newest first. A page of 0 returns every
// record without pagination.
func (uc *InterviewUsecase) ListInterviews(ctx context.Context, page, pageSize int) ([]dto.InterviewSummaryDTO, *response.Pagination, error) {
	offset, limit := 0, 0
	if page > 0 {
		if pageSize <= 0 {
			pageSize = DefaultPageSize
		}
		offset, limit = response.Offset(page, pageSize), pageSize
	}

	interviews, total, err := uc.interviews.ListInterviews(ctx, offset, limit)
	if err != nil {
		return nil, nil, apperror.Persistence("failed to fetch interviews", err)
	}

	summaries := make([]dto.InterviewSummaryDTO, 0, len(interviews))
	for _, i := range interviews {
		summaries = append(summaries, dto.NewInterviewSummary(i))
	}

	var pagination *response.Pagination
	if page > 0 {
		pagination = response.NewPagination(page, pageSize, total)
	}
	return summaries, pagination, nil
}

// storedScore is the dashboard value for a score. A zero, including the
// parse-failure report, is recorded as the passing default while the caller
// still receives the zero.
func storedScore(v int) int {
	if v == 0 {
		return analysis.DefaultScore
	}
	return v
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
