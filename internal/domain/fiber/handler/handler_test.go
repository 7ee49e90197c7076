package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/fadilmartias/ai-interviewer/internal/repository"
	"github.com/fadilmartias/ai-interviewer/internal/service"
	"github.com/fadilmartias/ai-interviewer/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubChat struct {
	reply string
	err   error
	calls int
}

func (s *stubChat) Complete(context.Context, service.ChatRequest) (string, error) {
	s.calls++
	return s.reply, s.err
}

type stubTranscriber struct {
	text string
	err  error
	seen []string
}

func (s *stubTranscriber) Transcribe(_ context.Context, path string) (string, error) {
	s.seen = append(s.seen, path)
	return s.text, s.err
}

type stubSpeech struct{}

func (stubSpeech) Synthesize(context.Context, string) (*service.SpeechResult, error) {
	return &service.SpeechResult{Filename: "speech_42.mp3", AudioURL: "/audio/speech_42.mp3"}, nil
}

type testServer struct {
	app         *fiber.App
	chat        *stubChat
	transcriber *stubTranscriber
	uploadDir   string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dsn := fmt.Sprintf("file:%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	s := &testServer{
		app:         fiber.New(),
		chat:        &stubChat{reply: "Tell me more."},
		transcriber: &stubTranscriber{text: "I like Go."},
		uploadDir:   t.TempDir(),
	}
	log := zap.NewNop()
	extract := func(string) (string, error) { return "Jane Doe, Go developer", nil }

	interviews := usecase.NewInterviewUsecase(s.chat, s.transcriber, stubSpeech{}, repository.NewInterviewRepository(db), log)
	api := s.app.Group("/api")
	NewResumeHandler(usecase.NewResumeUsecase(s.chat, extract, log), s.uploadDir).RegisterRoutes(api.Group("/resume"))
	NewJobHandler(usecase.NewJobUsecase(repository.NewJobRepository(db), log)).RegisterRoutes(api.Group("/jobs"))
	NewInterviewHandler(interviews, s.uploadDir).RegisterRoutes(api.Group("/interview"))
	NewAIHandler(interviews, s.uploadDir).RegisterRoutes(api.Group("/ai"))
	NewVoiceHandler(usecase.NewVoiceUsecase(stubSpeech{})).RegisterRoutes(api.Group("/voice"))
	return s
}

func (s *testServer) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	return resp.StatusCode, body
}

func (s *testServer) uploadsLeft(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(s.uploadDir)
	require.NoError(t, err)
	return len(entries)
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func multipartRequest(t *testing.T, target, field, filename, contentType string, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("binary-payload"))
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestJobCreateThenGet(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, jsonRequest(http.MethodPost, "/api/jobs/create",
		`{"roleTitle":"SRE","jobDescription":"On-call, Prometheus","difficulty":"Hard"}`))
	require.Equal(t, fiber.StatusCreated, status)
	data := body["data"].(map[string]any)
	id := data["id"].(string)
	assert.Equal(t, "SRE", data["roleTitle"])
	assert.Equal(t, model.DurationStandard, data["duration"])

	status, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id, nil))
	require.Equal(t, fiber.StatusOK, status)
	data = body["data"].(map[string]any)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "On-call, Prometheus", data["jobDescription"])
	assert.Equal(t, "Hard", data["difficulty"])
}

func TestJobCreateRejectsUnknownDifficulty(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, jsonRequest(http.MethodPost, "/api/jobs/create",
		`{"roleTitle":"SRE","jobDescription":"On-call","difficulty":"Extreme"}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Difficulty must be Easy, Medium, or Hard", body["message"])
}

func TestJobGetMissingReturns404(t *testing.T) {
	s := newTestServer(t)

	for _, id := range []string{"9b2f7a52-1c7e-4a47-8f8d-3c1f0d7a8e11", "not-an-id"} {
		status, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/jobs/"+id, nil))
		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Job not found", body["error"])
	}
}

func TestProcessTurn(t *testing.T) {
	s := newTestServer(t)

	req := multipartRequest(t, "/api/interview/process", "audio", "answer.webm", "audio/webm", map[string]string{
		"history":    `[{"role":"assistant","content":"Introduce yourself."}]`,
		"jobContext": `{"roleTitle":"Go Dev","jobDescription":"APIs","difficulty":"Easy"}`,
	})
	status, body := s.do(t, req)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "I like Go.", body["userTranscript"])
	assert.Equal(t, "Tell me more.", body["aiTranscript"])
	assert.Equal(t, "/audio/speech_42.mp3", body["audioUrl"])
	assert.Equal(t, "speech_42.mp3", body["filename"])

	require.Len(t, s.transcriber.seen, 1)
	assert.True(t, strings.HasSuffix(s.transcriber.seen[0], ".webm"))
	assert.Zero(t, s.uploadsLeft(t))
}

func TestProcessTurnTranscriptionFailureCleansUp(t *testing.T) {
	s := newTestServer(t)
	s.transcriber.err = errors.New("whisper unavailable")

	status, body := s.do(t, multipartRequest(t, "/api/interview/process", "audio", "answer.webm", "audio/webm", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "whisper unavailable", body["message"])
	assert.Zero(t, s.chat.calls)
	assert.Zero(t, s.uploadsLeft(t))
}

func TestProcessTurnRejectsNonAudio(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, multipartRequest(t, "/api/interview/process", "audio", "notes.txt", "text/plain", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, s.transcriber.seen)
	assert.Zero(t, s.uploadsLeft(t))
}

func TestAnalyzeUnparseableReply(t *testing.T) {
	s := newTestServer(t)
	s.chat.reply = "not json at all"

	status, body := s.do(t, jsonRequest(http.MethodPost, "/api/interview/analyze",
		`{"history":[{"role":"user","content":"hello"}],"candidateName":"Ada"}`))
	require.Equal(t, fiber.StatusOK, status)
	analysis := body["analysis"].(map[string]any)
	assert.Equal(t, float64(0), analysis["technical_score"])
	assert.Equal(t, float64(0), analysis["communication_score"])
	assert.Equal(t, float64(0), analysis["confidence_score"])
	assert.Equal(t, []any{}, analysis["feedback"])

	status, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/interview/all", nil))
	require.Equal(t, fiber.StatusOK, status)
	rows := body["data"].([]any)
	require.Len(t, rows, 1)
	row := rows[0].(map[string]any)
	assert.Equal(t, "Ada", row["candidateName"])
	assert.Equal(t, float64(70), row["technicalScore"])
	assert.Equal(t, float64(70), row["confidenceScore"])
	assert.NotContains(t, row, "feedback")
}

func TestAnalyzeRequiresHistory(t *testing.T) {
	s := newTestServer(t)

	status, _ := s.do(t, jsonRequest(http.MethodPost, "/api/interview/analyze", `{"history":[]}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Zero(t, s.chat.calls)
}

func TestListInterviewsPaginated(t *testing.T) {
	s := newTestServer(t)
	s.chat.reply = `{"technical_score":80}`
	for i := 0; i < 3; i++ {
		status, _ := s.do(t, jsonRequest(http.MethodPost, "/api/interview/analyze", `{"history":[{"role":"user","content":"hi"}]}`))
		require.Equal(t, fiber.StatusOK, status)
	}

	status, body := s.do(t, httptest.NewRequest(http.MethodGet, "/api/interview/all?page=1&page_size=2", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["data"].([]any), 2)
	pagination := body["pagination"].(map[string]any)
	assert.Equal(t, float64(3), pagination["total_items"])
	assert.Equal(t, true, pagination["has_more"])
}

func TestResumeParse(t *testing.T) {
	s := newTestServer(t)
	s.chat.reply = `{"fullName":"Jane Doe","technicalSkills":["Go"],"mostImpressiveProject":"A scheduler"}`

	status, body := s.do(t, multipartRequest(t, "/api/resume/parse", "resume", "cv.pdf", "application/pdf", nil))
	require.Equal(t, fiber.StatusOK, status, body)
	data := body["data"].(map[string]any)
	assert.Equal(t, "Jane Doe", data["fullName"])
	assert.Equal(t, []any{"Go"}, data["technicalSkills"])
	assert.Zero(t, s.uploadsLeft(t))
}

func TestResumeParseFailureCleansUp(t *testing.T) {
	s := newTestServer(t)
	s.chat.reply = "I cannot do that"

	status, _ := s.do(t, multipartRequest(t, "/api/resume/parse", "resume", "cv.pdf", "application/pdf", nil))
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Zero(t, s.uploadsLeft(t))
}

func TestResumeParseRejectsNonPDF(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, multipartRequest(t, "/api/resume/parse", "resume", "cv.docx", "application/msword", nil))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Only PDF files are allowed", body["message"])
	assert.Zero(t, s.chat.calls)
}

func TestAIPassthroughs(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, multipartRequest(t, "/api/ai/transcribe", "audio", "a.mp3", "audio/mpeg", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "I like Go.", body["transcription"])
	assert.Zero(t, s.uploadsLeft(t))

	status, body = s.do(t, jsonRequest(http.MethodPost, "/api/ai/chat", `{"message":"hello"}`))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Tell me more.", body["response"])

	status, _ = s.do(t, jsonRequest(http.MethodPost, "/api/ai/chat", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestVoiceRoutes(t *testing.T) {
	s := newTestServer(t)

	status, body := s.do(t, jsonRequest(http.MethodPost, "/api/voice/generate-custom", `{"text":"Héllo"}`))
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, float64(5), data["textLength"])
	assert.Equal(t, "/audio/speech_42.mp3", data["audioUrl"])

	status, body = s.do(t, jsonRequest(http.MethodPost, "/api/voice/generate", `{}`))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Text is required", body["error"])

	status, body = s.do(t, httptest.NewRequest(http.MethodGet, "/api/voice/test", nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, usecase.SampleSpeechText, body["meta"].(map[string]any)["sampleText"])
}

func TestHealthChecks(t *testing.T) {
	s := newTestServer(t)

	cases := map[string]string{
		"/api/resume/health":     "Resume Parser",
		"/api/jobs/check/health": "Jobs Service",
		"/api/interview/health":  "Interview Orchestrator",
		"/api/voice/health":      "Voice Service",
	}
	for path, service := range cases {
		status, body := s.do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, fiber.StatusOK, status, path)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, service, body["service"])
		assert.NotEmpty(t, body["timestamp"])
	}
}
