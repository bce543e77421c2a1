package outbound

import (
	"context"

	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

type StoryGeneratorPort interface {
	Generate(ctx context.Context, prompt string) (domain.Story, error)
}
