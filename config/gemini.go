package config

import (
	"fmt"
	"os"
)

const defaultGeminiApiUrl = "https://generativelanguage.googleapis.com/v1beta"

type GeminiConfig struct {
	ApiUrl string
	ApiKey string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}
	apiUrl := os.Getenv("GEMINI_API_URL")
	if apiUrl == "" {
		apiUrl = defaultGeminiApiUrl
	}
	return &GeminiConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
