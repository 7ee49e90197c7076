package config

import (
	"log"
	"os"
	"sync"
)

type AppConfig struct {
	Name        string
	Env         string
	Port        string
	BaseURL     string
	UploadDir   string
	AudioDir    string
	CORSOrigins string
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		appConfig = &AppConfig{
			Name:        getEnv("APP_NAME", "AI Interviewer"),
			Env:         env,
			Port:        getEnv("APP_PORT", ":5000"),
			BaseURL:     os.Getenv("APP_URL"),
			UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
			AudioDir:    getEnv("AUDIO_DIR", "./public/audio"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		}
	})
	return appConfig
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
