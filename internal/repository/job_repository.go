package repository

import (
	"context"
	"errors"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *JobRepository) FindJobByID(ctx context.Context, id string) (*model.Job, error) {
	jobID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var j model.Job
	err = r.db.WithContext(ctx).First(&j, "id = ?", jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

var _ JobStore = (*JobRepository)(nil)
