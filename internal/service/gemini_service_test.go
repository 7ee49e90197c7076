package service

import (
	"testing"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestGeminiRequestMapsRoles(t *testing.T) {
	contents, cfg := geminiRequest(ChatRequest{
		Messages: []model.Message{
			{Role: model.RoleSystem, Content: "persona"},
			{Role: model.RoleAssistant, Content: "Hello, tell me about yourself."},
			{Role: model.RoleUser, Content: "I write Go."},
		},
		Temperature: 0.7,
		MaxTokens:   150,
		JSONMode:    true,
	})

	require.Len(t, contents, 2)
	assert.Equal(t, genai.RoleModel, contents[0].Role)
	assert.Equal(t, genai.RoleUser, contents[1].Role)
	assert.Equal(t, "I write Go.", contents[1].Parts[0].Text)

	require.NotNil(t, cfg.SystemInstruction)
	assert.Equal(t, "persona", cfg.SystemInstruction.Parts[0].Text)
	assert.Equal(t, int32(150), cfg.MaxOutputTokens)
	assert.Equal(t, "application/json", cfg.ResponseMIMEType)
	assert.InDelta(t, 0.7, *cfg.Temperature, 0.0001)
}

func TestValidateGenerateResponse(t *testing.T) {
	assert.Error(t, validateGenerateResponse(nil))
	assert.Error(t, validateGenerateResponse(&genai.GenerateContentResponse{}))
	assert.NoError(t, validateGenerateResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("hi", genai.RoleModel)}},
	}))
}
