package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/ai-interviewer/internal/apperror"
	"github.com/fadilmartias/ai-interviewer/internal/dto"
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestJobCreateAndGet(t *testing.T) {
	store := newFakeJobStore()
	uc := NewJobUsecase(store, zap.NewNop())

	for _, difficulty := range model.Difficulties {
		job, err := uc.Create(context.Background(), dto.CreateJobRequest{
			RoleTitle:      "Data Engineer",
			JobDescription: "Spark and Airflow",
			Difficulty:     difficulty,
		})
		require.NoError(t, err)
		assert.Equal(t, model.DurationStandard, job.Duration)
		assert.False(t, job.CreatedAt.IsZero())

		got, err := uc.Get(context.Background(), job.ID.String())
		require.NoError(t, err)
		assert.Equal(t, *job, *got)
	}
}

func TestJobCreateValidation(t *testing.T) {
	cases := []struct {
		name string
		req  dto.CreateJobRequest
		code string
	}{
		{"missing title", dto.CreateJobRequest{JobDescription: "d", Difficulty: "Easy"}, apperror.CodeMissingInput},
		{"missing description", dto.CreateJobRequest{RoleTitle: "r", Difficulty: "Easy"}, apperror.CodeMissingInput},
		{"missing difficulty", dto.CreateJobRequest{RoleTitle: "r", JobDescription: "d"}, apperror.CodeMissingInput},
		{"unknown difficulty", dto.CreateJobRequest{RoleTitle: "r", JobDescription: "d", Difficulty: "Extreme"}, apperror.CodeInvalidInput},
		{"unknown duration", dto.CreateJobRequest{RoleTitle: "r", JobDescription: "d", Difficulty: "Hard", Duration: "2 hours"}, apperror.CodeInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeJobStore()
			uc := NewJobUsecase(store, zap.NewNop())

			_, err := uc.Create(context.Background(), tc.req)
			assert.True(t, apperror.HasCode(err, tc.code))
			assert.Equal(t, 400, apperror.StatusCode(err))
			assert.Empty(t, store.jobs)
		})
	}
}

func TestJobGetMissing(t *testing.T) {
	uc := NewJobUsecase(newFakeJobStore(), zap.NewNop())

	_, err := uc.Get(context.Background(), uuid.NewString())
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))
	assert.Equal(t, 404, apperror.StatusCode(err))
}
