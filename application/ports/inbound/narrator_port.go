package inbound

import (
	"context"

	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

type NarratorPort interface {
	Narrate(ctx context.Context, text string) (domain.AudioArtifact, error)
}
