package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUpstreamError(t *testing.T) {
	err := NewUpstreamError("Gemini API Error", http.StatusTooManyRequests, "quota exceeded")

	assert.Equal(t, UpstreamError, err.Kind)
	assert.Equal(t, http.StatusTooManyRequests, err.Status)
	assert.Equal(t, "Gemini API Error", err.Label)
	assert.Equal(t, "quota exceeded", err.UpstreamBody)
	assert.Equal(t, "Gemini API Error: quota exceeded", err.Error())
}

func TestNewTransportError(t *testing.T) {
	err := NewTransportError("Deepgram API", errors.New("dial tcp: connection refused"))

	assert.Equal(t, TransportError, err.Kind)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.Equal(t, "Failed to connect to Deepgram API: dial tcp: connection refused", err.Error())
}

func TestNewInvalidInput(t *testing.T) {
	err := NewInvalidInput("Prompt is required")

	assert.Equal(t, InvalidInput, err.Kind)
	assert.Equal(t, http.StatusBadRequest, err.Status)
}

func TestAsRequestError(t *testing.T) {
	reqErr := NewInvalidInput("Prompt is required")
	assert.Equal(t, reqErr, AsRequestError(reqErr))

	wrapped := AsRequestError(errors.New("boom"))
	assert.Equal(t, InternalError, wrapped.Kind)
	assert.Equal(t, http.StatusInternalServerError, wrapped.Status)
	assert.Equal(t, "An unexpected error occurred: boom", wrapped.Error())
}
