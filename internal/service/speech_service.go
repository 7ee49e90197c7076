package service

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"go.uber.org/zap"
)

// AudioURLPrefix is where generated speech files are served from.
const AudioURLPrefix = "/audio/"

// ScriptSpeechService runs an external synthesis helper. The helper gets the
// text as its only argument, writes an audio file into TTS_OUTPUT_DIR and
// prints "SUCCESS:<filename>" on stdout, or "ERROR:<message>" on stderr with
// a non-zero exit.
type ScriptSpeechService struct {
	executable string
	script     string
	voice      string
	outputDir  string
	logger     *zap.Logger
}

func NewScriptSpeechService(cfg *config.SpeechConfig, outputDir string, logger *zap.Logger) *ScriptSpeechService {
	return &ScriptSpeechService{
		executable: cfg.PythonExecutable,
		script:     cfg.ScriptPath,
		voice:      cfg.Voice,
		outputDir:  outputDir,
		logger:     logger,
	}
}

func (s *ScriptSpeechService) Synthesize(ctx context.Context, text string) (*SpeechResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("text is required for speech generation")
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("prepare audio dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.executable, s.script, text)
	cmd.Env = append(os.Environ(), "TTS_OUTPUT_DIR="+s.outputDir, "TTS_VOICE="+s.voice)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, fmt.Errorf("speech helper failed: %s", helperError(stderr.String()))
		}
		return nil, fmt.Errorf("failed to start speech helper: %w", err)
	}

	filename, ok := helperFilename(stdout.String())
	if !ok {
		s.logger.Warn("unexpected speech helper output", zap.String("stdout", stdout.String()))
		return nil, errors.New("failed to parse output from speech helper")
	}
	return &SpeechResult{Filename: filename, AudioURL: AudioURLPrefix + filename}, nil
}

func helperFilename(out string) (string, bool) {
	return markedLine(out, "SUCCESS:", func(v string) string { return filepath.Base(v) })
}

func helperError(out string) string {
	if msg, ok := markedLine(out, "ERROR:", nil); ok {
		return msg
	}
	return "Unknown error occurred"
}

func markedLine(out, marker string, clean func(string) string) (string, bool) {
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		idx := strings.Index(line, marker)
		if idx < 0 {
			continue
		}
		v := strings.TrimSpace(line[idx+len(marker):])
		if v == "" {
			continue
		}
		if clean != nil {
			v = clean(v)
		}
		return v, true
	}
	return "", false
}

var _ SpeechServiceInterface = (*ScriptSpeechService)(nil)
