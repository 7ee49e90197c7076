package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/ai-interviewer/internal/model"
)

var ErrNotFound = errors.New("record not found")

type JobStore interface {
	CreateJob(ctx context.Context, job *model.Job) error
	FindJobByID(ctx context.Context, id string) (*model.Job, error)
}

// InterviewStore lists newest first. A limit of 0 returns everything.
type InterviewStore interface {
	CreateInterview(ctx context.Context, interview *model.Interview) error
	ListInterviews(ctx context.Context, offset, limit int) ([]model.Interview, int64, error)
}
