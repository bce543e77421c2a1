package config

import (
	"fmt"
	"os"
)

const (
	defaultGeminiApiUrl = "https://generativelanguage.googleapis.com"
	defaultGeminiModel  = "gemini-1.5-flash"
)

type GeminiConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
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
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
