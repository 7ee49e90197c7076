package dto

import (
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/google/uuid"
)

type AnalyzeRequest struct {
	History       []model.Message   `json:"history"`
	JobContext    *model.JobContext `json:"jobContext,omitempty"`
	CandidateName string            `json:"candidateName,omitempty"`
	JobRole       string            `json:"jobRole,omitempty"`
	Difficulty    string            `json:"difficulty,omitempty"`
	Duration      string            `json:"duration,omitempty"`
}

type ChatRequest struct {
	Message    string               `json:"message"`
	History    []model.Message      `json:"history,omitempty"`
	Context    *model.ResumeContext `json:"context,omitempty"`
	JobContext *model.JobContext    `json:"jobContext,omitempty"`
}

// TurnResponse is flat on purpose: the client reads these keys next to
// "success".
type TurnResponse struct {
	Success        bool   `json:"success"`
	AudioURL       string `json:"audioUrl"`
	UserTranscript string `json:"userTranscript"`
	AITranscript   string `json:"aiTranscript"`
	Filename       string `json:"filename"`
}

type AnalyzeResponse struct {
	Success  bool              `json:"success"`
	Analysis model.ScoreReport `json:"analysis"`
}

// InterviewSummaryDTO is the dashboard row; the feedback list is left out.
type InterviewSummaryDTO struct {
	ID                 uuid.UUID `json:"id"`
	CandidateName      string    `json:"candidateName"`
	JobRole            string    `json:"jobRole"`
	Difficulty         string    `json:"difficulty"`
	Duration           string    `json:"duration"`
	TechnicalScore     int       `json:"technicalScore"`
	CommunicationScore int       `json:"communicationScore"`
	ConfidenceScore    int       `json:"confidenceScore"`
	CreatedAt          time.Time `json:"createdAt"`
}

func NewInterviewSummary(i model.Interview) InterviewSummaryDTO {
	return InterviewSummaryDTO{
		ID:                 i.ID,
		CandidateName:      i.CandidateName,
		JobRole:            i.JobRole,
		Difficulty:         i.Difficulty,
		Duration:           i.Duration,
		TechnicalScore:     i.TechnicalScore,
		CommunicationScore: i.CommunicationScore,
		ConfidenceScore:    i.ConfidenceScore,
		CreatedAt:          i.CreatedAt,
	}
}
