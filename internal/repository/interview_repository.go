package repository

import (
	"context"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"gorm.io/gorm"
)

type InterviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db}
}

func (r *InterviewRepository) CreateInterview(ctx context.Context, interview *model.Interview) error {
	return r.db.WithContext(ctx).Create(interview).Error
}

func (r *InterviewRepository) ListInterviews(ctx context.Context, offset, limit int) ([]model.Interview, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Interview{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Order("created_at desc").Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}

	interviews := []model.Interview{}
	if err := q.Find(&interviews).Error; err != nil {
		return nil, 0, err
	}
	return interviews, total, nil
}

var _ InterviewStore = (*InterviewRepository)(nil)
