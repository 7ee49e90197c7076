package dto

import "time"

type GenerateSpeechRequest struct {
	Text string `json:"text"`
}

type SpeechDTO struct {
	Filename string `json:"filename"`
	AudioURL string `json:"audioUrl"`
}

type CustomSpeechDTO struct {
	Filename    string    `json:"filename"`
	AudioURL    string    `json:"audioUrl"`
	TextLength  int       `json:"textLength"`
	GeneratedAt time.Time `json:"generatedAt"`
}
