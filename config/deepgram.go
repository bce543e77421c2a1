package config

import (
	"fmt"
	"os"
)

const (
	defaultDeepgramApiUrl = "https://api.deepgram.com"
	defaultDeepgramModel  = "aura-asteria-en"
)

type DeepgramConfig struct {
	ApiUrl     string
	ApiKey     string
	Model      string
	Encoding   string
	SampleRate int
}

func GetDeepgramConfig() (*DeepgramConfig, error) {
	apiKey := os.Getenv("DEEPGRAM_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("DEEPGRAM_API_KEY must be set")
	}
	apiUrl := os.Getenv("DEEPGRAM_API_URL")
	if apiUrl == "" {
		apiUrl = defaultDeepgramApiUrl
	}
	model := os.Getenv("DEEPGRAM_MODEL")
	if model == "" {
		model = defaultDeepgramModel
	}
	return &DeepgramConfig{
		ApiUrl:     apiUrl,
		ApiKey:     apiKey,
		Model:      model,
		Encoding:   "linear16",
		SampleRate: 24000,
	}, nil
}
