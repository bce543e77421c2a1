package outbound

import (
	"context"

	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

// AudioSinkPort decides where a synthesized narration lives between the
// upstream call and the response being written.
type AudioSinkPort interface {
	Store(ctx context.Context, audio []byte) (domain.AudioArtifact, error)
}
