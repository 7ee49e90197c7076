package usecase

import (
	"context"
	"errors"

	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/metrics"
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/fadilmartias/ai-interviewer/internal/prompt"
	"github.com/fadilmartias/ai-interviewer/internal/service"
	"github.com/fadilmartias/ai-interviewer/internal/util"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	extractionTemperature = 0.1
	maxResumeSkills       = 5
)

var errMalformedExtraction = errors.New("extraction reply is not a JSON object")

// TextExtractor reads the plain text out of a document on disk.
type TextExtractor func(path string) (string, error)

type ResumeUsecase struct {
	chat    service.ChatServiceInterface
	extract TextExtractor
	logger  *zap.Logger
}

// NewResumeUsecase uses util.ExtractPDFText when extract is nil.
func NewResumeUsecase(chat service.ChatServiceInterface, extract TextExtractor, logger *zap.Logger) *ResumeUsecase {
	if extract == nil {
		extract = util.ExtractPDFText
	}
	return &ResumeUsecase{chat: chat, extract: extract, logger: logger}
}

// Parse pulls the candidate's name, top skills and best project out of a
// resume. The model's JSON mode is trusted; a malformed reply fails the
// request.
func (uc *ResumeUsecase) Parse(ctx context.Context, path string) (*model.ResumeContext, error) {
	if path == "" {
		return nil, apperror.Validation(apperror.CodeMissingInput, "No file uploaded")
	}

	text, err := uc.extract(path)
	if err != nil {
		return nil, apperror.Upstream(apperror.CodeExtractionFailed, "failed to read resume", err)
	}

	raw, err := uc.chat.Complete(ctx, service.ChatRequest{
		Messages: []model.Message{
			{Role: model.RoleSystem, Content: prompt.BuildResumeExtractionPrompt(text)},
			{Role: model.RoleUser, Content: prompt.ResumeExtractionUserMessage},
		},
		Temperature: extractionTemperature,
		JSONMode:    true,
	})
	if err != nil {
		metrics.ProviderFailed("extraction")
		return nil, apperror.Upstream(apperror.CodeExtractionFailed, "failed to parse resume", err)
	}

	resume, err := parseResume(raw)
	if err != nil {
		uc.logger.Warn("resume extraction reply rejected", zap.String("reply", raw))
		return nil, apperror.Upstream(apperror.CodeExtractionFailed, "failed to parse resume", err)
	}

	uc.logger.Info("resume parsed", zap.String("candidate", resume.FullName), zap.Int("skills", len(resume.TechnicalSkills)))
	return resume, nil
}

func parseResume(raw string) (*model.ResumeContext, error) {
	if raw == "" {
		raw = "{}"
	}
	if !gjson.Valid(raw) {
		return nil, errMalformedExtraction
	}
	doc := gjson.Parse(raw)
	if !doc.IsObject() {
		return nil, errMalformedExtraction
	}

	skills := make([]string, 0, maxResumeSkills)
	for _, s := range doc.Get("technicalSkills").Array() {
		if len(skills) == maxResumeSkills {
			break
		}
		if s.String() != "" {
			skills = append(skills, s.String())
		}
	}

	return &model.ResumeContext{
		FullName:              doc.Get("fullName").String(),
		TechnicalSkills:       skills,
		MostImpressiveProject: doc.Get("mostImpressiveProject").String(),
	}, nil
}
