package services

import (
	"context"
	"strings"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/inbound"
	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

type storyTeller struct {
	logger    outbound.LoggerPort
	generator outbound.StoryGeneratorPort
}

func NewStoryTeller(logger outbound.LoggerPort, generator outbound.StoryGeneratorPort) inbound.StoryTellerPort {
	return &storyTeller{
		logger:    logger,
		generator: generator,
	}
}

func (s *storyTeller) Generate(ctx context.Context, prompt string) (domain.Story, error) {
	if strings.TrimSpace(prompt) == "" {
		return domain.Story{}, domain.NewInvalidInput("Prompt is required")
	}

	story, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error(err, "Failed to generate story")
		return domain.Story{}, domain.AsRequestError(err)
	}

	return story, nil
}
