package adapters

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/config"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeepgramSynthesizer(upstreamURL string) outbound.SpeechSynthesizerPort {
	logger := NewZerologWrapper()
	return NewDeepgramSynthesizer(
		NewContentFetcher(5*time.Second, logger),
		&config.DeepgramConfig{
			ApiUrl:     upstreamURL,
			ApiKey:     "test-key",
			Model:      "aura-asteria-en",
			Encoding:   "linear16",
			SampleRate: 24000,
		},
		logger,
	)
}

func TestDeepgramSynthesizer_Synthesize(t *testing.T) {
	audio := []byte("RIFF....")

	var gotPath string
	var gotQuery url.Values
	var gotAuth string
	var gotBody []byte

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write(audio)
	}))
	defer upstream.Close()

	got, err := newDeepgramSynthesizer(upstream.URL).Synthesize(context.Background(), "Once upon a time")
	require.NoError(t, err)

	assert.Equal(t, audio, got)
	assert.Equal(t, "/v1/speak", gotPath)
	assert.Equal(t, "aura-asteria-en", gotQuery.Get("model"))
	assert.Equal(t, "linear16", gotQuery.Get("encoding"))
	assert.Equal(t, "24000", gotQuery.Get("sample_rate"))
	assert.Equal(t, "Token test-key", gotAuth)
	assert.JSONEq(t, `{"text":"Once upon a time"}`, string(gotBody))
}

func TestDeepgramSynthesizer_Synthesize_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("unsupported voice"))
	}))
	defer upstream.Close()

	_, err := newDeepgramSynthesizer(upstream.URL).Synthesize(context.Background(), "Once upon a time")
	require.Error(t, err)

	reqErr := domain.AsRequestError(err)
	assert.Equal(t, domain.UpstreamError, reqErr.Kind)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, DeepgramErrorLabel, reqErr.Label)
	assert.Equal(t, "unsupported voice", reqErr.UpstreamBody)
}

func TestDeepgramSynthesizer_Synthesize_TransportError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	_, err := newDeepgramSynthesizer(upstream.URL).Synthesize(context.Background(), "Once upon a time")
	require.Error(t, err)
	assert.Equal(t, domain.TransportError, domain.AsRequestError(err).Kind)
}
