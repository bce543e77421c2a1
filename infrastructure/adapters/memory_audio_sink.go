package adapters

import (
	"context"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

// memoryAudioSink keeps the narration in a per-request buffer; nothing ever
// touches disk, so concurrent narrations cannot interleave.
type memoryAudioSink struct{}

func NewMemoryAudioSink() outbound.AudioSinkPort {
	return &memoryAudioSink{}
}

func (m *memoryAudioSink) Store(_ context.Context, audio []byte) (domain.AudioArtifact, error) {
	buffered := make([]byte, len(audio))
	copy(buffered, audio)
	return domain.NewBufferedArtifact(buffered), nil
}
