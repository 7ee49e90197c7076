package config

import "sync"

type SpeechConfig struct {
	PythonExecutable string
	ScriptPath       string
	Voice            string
}

var (
	speechConfig *SpeechConfig
	speechOnce   sync.Once
)

func LoadSpeechConfig() *SpeechConfig {
	speechOnce.Do(func() {
		speechConfig = &SpeechConfig{
			PythonExecutable: getEnv("PYTHON_EXECUTABLE", "python"),
			ScriptPath:       getEnv("TTS_SCRIPT_PATH", "python-scripts/tts.py"),
			Voice:            getEnv("TTS_VOICE", "en-US-AriaNeural"),
		}
	})
	return speechConfig
}
