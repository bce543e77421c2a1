package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/config"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

const (
	// DeepgramErrorLabel is also what the narration endpoint echoes back to
	// callers when the upstream reports a failure.
	DeepgramErrorLabel = "Deepgram API Error"

	deepgramApiName = "Deepgram API"
)

type deepgramRequest struct {
	Text string `json:"text"`
}

type deepgramSynthesizer struct {
	ContentFetcher
	logger         outbound.LoggerPort
	deepgramConfig *config.DeepgramConfig
}

func NewDeepgramSynthesizer(contentFetcher ContentFetcher, deepgramConfig *config.DeepgramConfig, logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &deepgramSynthesizer{
		ContentFetcher: contentFetcher,
		logger:         logger,
		deepgramConfig: deepgramConfig,
	}
}

func (d *deepgramSynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req, err := d.getRequest(ctx, text)
	if err != nil {
		d.logger.Error(err, "Failed to construct the HTTP request for speech synthesis")
		return nil, err
	}

	res, err := d.Fetch(req)
	if err != nil {
		return nil, domain.NewTransportError(deepgramApiName, err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(DeepgramErrorLabel, res.StatusCode, string(res.Body))
	}

	return res.Body, nil
}

func (d *deepgramSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	jsonPayload, err := json.Marshal(deepgramRequest{Text: text})
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("model", d.deepgramConfig.Model)
	query.Set("encoding", d.deepgramConfig.Encoding)
	query.Set("sample_rate", strconv.Itoa(d.deepgramConfig.SampleRate))

	endpoint := d.deepgramConfig.ApiUrl + "/v1/speak?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, err
	}

	reqHeaders := map[string]string{
		"Authorization": "Token " + d.deepgramConfig.ApiKey,
		"Content-Type":  "application/json",
	}
	for key, value := range reqHeaders {
		req.Header.Add(key, value)
	}

	return req, nil
}
