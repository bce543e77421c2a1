package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/config"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

const (
	geminiErrorLabel = "Gemini API Error"
	geminiApiName    = "Gemini API"

	// Served whenever the upstream response is missing any level of the
	// candidates/content/parts nesting.
	storyFallback = "No story generated."
)

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiGenerator struct {
	ContentFetcher
	logger       outbound.LoggerPort
	geminiConfig *config.GeminiConfig
}

func NewGeminiGenerator(contentFetcher ContentFetcher, geminiConfig *config.GeminiConfig, logger outbound.LoggerPort) outbound.StoryGeneratorPort {
	return &geminiGenerator{
		ContentFetcher: contentFetcher,
		logger:         logger,
		geminiConfig:   geminiConfig,
	}
}

func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (domain.Story, error) {
	req, err := g.getRequest(ctx, prompt)
	if err != nil {
		g.logger.Error(err, "Failed to construct the HTTP request for story generation")
		return domain.Story{}, err
	}

	res, err := g.Fetch(req)
	if err != nil {
		return domain.Story{}, domain.NewTransportError(geminiApiName, err)
	}

	if res.StatusCode != http.StatusOK {
		return domain.Story{}, domain.NewUpstreamError(geminiErrorLabel, res.StatusCode, string(res.Body))
	}

	text, err := g.extractStoryText(res.Body)
	if err != nil {
		return domain.Story{}, err
	}

	return domain.Story{Text: text}, nil
}

func (g *geminiGenerator) extractStoryText(body []byte) (string, error) {
	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		g.logger.Error(err, "Failed to unmarshal the Gemini response")
		return "", err
	}

	if len(parsed.Candidates) == 0 {
		return storyFallback, nil
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0].Text == "" {
		return storyFallback, nil
	}
	return parts[0].Text, nil
}

func (g *geminiGenerator) getRequest(ctx context.Context, prompt string) (*http.Request, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.geminiConfig.ApiUrl, g.geminiConfig.Model, g.geminiConfig.ApiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
