package config

import (
	"os"
	"sync"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// GroqConfig covers both the chat and the transcription endpoints of the
// OpenAI-compatible Groq API.
type GroqConfig struct {
	ChatProvider       string
	APIKey             string
	BaseURL            string
	ChatModel          string
	TranscriptionModel string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		groqConfig = &GroqConfig{
			ChatProvider:       getEnv("CHAT_PROVIDER", ProviderGroq),
			APIKey:             os.Getenv("GROQ_API_KEY"),
			BaseURL:            getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
			ChatModel:          getEnv("GROQ_CHAT_MODEL", "llama-3.3-70b-versatile"),
			TranscriptionModel: getEnv("GROQ_TRANSCRIPTION_MODEL", "whisper-large-v3-turbo"),
		}
	})
	return groqConfig
}
