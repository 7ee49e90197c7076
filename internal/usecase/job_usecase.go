package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/fadilmartias/ai-interviewer/internal/repository"
	"go.uber.org/zap"
)

type JobUsecase struct {
	jobs   repository.JobStore
	logger *zap.Logger
}

func NewJobUsecase(jobs repository.JobStore, logger *zap.Logger) *JobUsecase {
	return &JobUsecase{jobs: jobs, logger: logger}
}

func (uc *JobUsecase) Create(ctx context.Context, req dto.CreateJobRequest) (*model.Job, error) {
	roleTitle := strings.TrimSpace(req.RoleTitle)
	description := strings.TrimSpace(req.JobDescription)
	if roleTitle == "" || description == "" || req.Difficulty == "" {
		return nil, apperror.Validation(apperror.CodeMissingInput, "Please provide roleTitle, jobDescription, and difficulty")
	}
	if !model.IsValidDifficulty(req.Difficulty) {
		return nil, apperror.Validation(apperror.CodeInvalidInput, "Difficulty must be Easy, Medium, or Hard")
	}

	duration := req.Duration
	if duration == "" {
		duration = model.DurationStandard
	}
	if !model.IsValidDuration(duration) {
		return nil, apperror.Validation(apperror.CodeInvalidInput, "Duration must be one of: "+strings.Join(model.Durations, ", "))
	}

	job := &model.Job{
		RoleTitle:      roleTitle,
		JobDescription: description,
		Difficulty:     req.Difficulty,
		Duration:       duration,
		CreatedAt:      time.Now(),
	}
	if err := uc.jobs.CreateJob(ctx, job); err != nil {
		return nil, apperror.Persistence("failed to create job", err)
	}

	uc.logger.Info("job created", zap.String("id", job.ID.String()), zap.String("role", job.RoleTitle))
	return job, nil
}

func (uc *JobUsecase) Get(ctx context.Context, id string) (*model.Job, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperror.Validation(apperror.CodeMissingInput, "Please provide a job ID")
	}

	job, err := uc.jobs.FindJobByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("Job not found", err)
	}
	if err != nil {
		return nil, apperror.Persistence("failed to retrieve job", err)
	}
	return job, nil
}
