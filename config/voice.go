package config

import (
	"fmt"
	"os"
	"strconv"
)

type VoiceConfig struct {
	ModelUrl       string
	UploadDir      string
	OutputDir      string
	WebDir         string
	TimeoutSeconds int
}

func GetVoiceConfig() (*VoiceConfig, error) {
	modelUrl := os.Getenv("VOICE_MODEL_URL")
	if modelUrl == "" {
		modelUrl = "http://127.0.0.1:5002/api/synthesize"
	}
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "outputs"
	}
	webDir := os.Getenv("WEB_DIR")
	if webDir == "" {
		webDir = "web"
	}
	timeoutSeconds := 60
	if raw := os.Getenv("SYNTH_TIMEOUT_SECONDS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse SYNTH_TIMEOUT_SECONDS")
		}
		timeoutSeconds = parsed
	}

	return &VoiceConfig{
		ModelUrl:       modelUrl,
		UploadDir:      uploadDir,
		OutputDir:      outputDir,
		WebDir:         webDir,
		TimeoutSeconds: timeoutSeconds,
	}, nil
}
