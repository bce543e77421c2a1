package adapters

import (
	"context"
	"os"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

// legacyFileAudioSink reproduces the original behavior: every narration
// overwrites the same fixed path, acting as a single-slot cache of the last
// narration produced. There is no lock, so two concurrent narrations can
// interleave their write and read. Kept only for behavioral parity; prefer
// the memory sink.
type legacyFileAudioSink struct {
	logger outbound.LoggerPort
	path   string
}

func NewLegacyFileAudioSink(path string, logger outbound.LoggerPort) outbound.AudioSinkPort {
	return &legacyFileAudioSink{
		logger: logger,
		path:   path,
	}
}

func (l *legacyFileAudioSink) Store(_ context.Context, audio []byte) (domain.AudioArtifact, error) {
	if err := os.WriteFile(l.path, audio, 0o644); err != nil {
		l.logger.ErrorWithFields(err, "Failed to write narration audio", map[string]interface{}{
			"path": l.path,
		})
		return domain.AudioArtifact{}, err
	}

	// The slot is overwritten by the next request, never removed.
	return domain.NewFileArtifact(l.path, nil), nil
}
