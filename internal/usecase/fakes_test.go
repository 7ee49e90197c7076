package usecase

import (
	"context"
	"sync"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/fadilmartias/ai-interviewer/internal/repository"
	"github.com/fadilmartias/ai-interviewer/internal/service"
	"github.com/google/uuid"
)

type fakeChat struct {
	completeFn func(ctx context.Context, req service.ChatRequest) (string, error)
	calls      []service.ChatRequest
}

func (f *fakeChat) Complete(ctx context.Context, req service.ChatRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.completeFn == nil {
		return "", nil
	}
	return f.completeFn(ctx, req)
}

func replyWith(text string) *fakeChat {
	return &fakeChat{completeFn: func(context.Context, service.ChatRequest) (string, error) {
		return text, nil
	}}
}

type fakeTranscriber struct {
	transcribeFn func(ctx context.Context, path string) (string, error)
	calls        int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, path string) (string, error) {
	f.calls++
	return f.transcribeFn(ctx, path)
}

type fakeSpeech struct {
	synthesizeFn func(ctx context.Context, text string) (*service.SpeechResult, error)
	texts        []string
}

func (f *fakeSpeech) Synthesize(ctx context.Context, text string) (*service.SpeechResult, error) {
	f.texts = append(f.texts, text)
	if f.synthesizeFn == nil {
		return &service.SpeechResult{Filename: "speech_1.mp3", AudioURL: service.AudioURLPrefix + "speech_1.mp3"}, nil
	}
	return f.synthesizeFn(ctx, text)
}

type fakeInterviewStore struct {
	mu        sync.Mutex
	saved     []model.Interview
	createErr error
	listErr   error
}

func (f *fakeInterviewStore) CreateInterview(_ context.Context, i *model.Interview) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i.ID = uuid.New()
	f.saved = append(f.saved, *i)
	return nil
}

func (f *fakeInterviewStore) ListInterviews(_ context.Context, offset, limit int) ([]model.Interview, int64, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	total := int64(len(f.saved))
	if offset >= len(f.saved) {
		return []model.Interview{}, total, nil
	}
	end := len(f.saved)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]model.Interview{}, f.saved[offset:end]...), total, nil
}

type fakeJobStore struct {
	jobs map[string]model.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: map[string]model.Job{}}
}

func (f *fakeJobStore) CreateJob(_ context.Context, job *model.Job) error {
	job.ID = uuid.New()
	f.jobs[job.ID.String()] = *job
	return nil
}

func (f *fakeJobStore) FindJobByID(_ context.Context, id string) (*model.Job, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &job, nil
}
