package inbound

import (
	"context"

	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

type StoryTellerPort interface {
	Generate(ctx context.Context, prompt string) (domain.Story, error)
}
