package adapters

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentFetcher_Fetch_PreservesStatusAndBody(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer upstream.Close()

	fetcher := NewContentFetcher(5*time.Second, NewZerologWrapper())

	req, err := http.NewRequest(http.MethodPost, upstream.URL, nil)
	require.NoError(t, err)

	res, err := fetcher.Fetch(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)
	assert.Equal(t, "short and stout", string(res.Body))
}

func TestContentFetcher_Fetch_TransportFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	fetcher := NewContentFetcher(5*time.Second, NewZerologWrapper())

	req, err := http.NewRequest(http.MethodPost, upstream.URL, nil)
	require.NoError(t, err)

	res, err := fetcher.Fetch(req)
	require.Error(t, err)
	assert.Nil(t, res)
}
