package adapters

import (
	"context"
	"os"
	"path/filepath"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
	"github.com/google/uuid"
)

// tempFileAudioSink writes each narration to its own uuid-named file and
// removes it once the response has been served. Removal is dispatched on
// the worker pool so the handler does not wait on it.
type tempFileAudioSink struct {
	logger     outbound.LoggerPort
	dispatcher outbound.TaskDispatcher
	dir        string
}

func NewTempFileAudioSink(dispatcher outbound.TaskDispatcher, logger outbound.LoggerPort) outbound.AudioSinkPort {
	return &tempFileAudioSink{
		logger:     logger,
		dispatcher: dispatcher,
		dir:        os.TempDir(),
	}
}

func (t *tempFileAudioSink) Store(_ context.Context, audio []byte) (domain.AudioArtifact, error) {
	path := filepath.Join(t.dir, "narration-"+uuid.NewString()+".wav")

	if err := os.WriteFile(path, audio, 0o600); err != nil {
		t.logger.ErrorWithFields(err, "Failed to write narration audio", map[string]interface{}{
			"path": path,
		})
		return domain.AudioArtifact{}, err
	}

	release := func() {
		err := t.dispatcher.Submit(func() {
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				t.logger.ErrorWithFields(err, "Failed to remove narration audio", map[string]interface{}{
					"path": path,
				})
			}
		})
		if err != nil {
			t.logger.Error(err, "Failed to dispatch narration cleanup")
			if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
				t.logger.Error(removeErr, "Failed to remove narration audio")
			}
		}
	}

	return domain.NewFileArtifact(path, release), nil
}
