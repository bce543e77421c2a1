package services

import (
	"context"
	"strings"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/inbound"
	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/Karthikeya51/DreamSync-Backend/domain"
)

type narrator struct {
	logger      outbound.LoggerPort
	synthesizer outbound.SpeechSynthesizerPort
	sink        outbound.AudioSinkPort
}

func NewNarrator(logger outbound.LoggerPort, synthesizer outbound.SpeechSynthesizerPort, sink outbound.AudioSinkPort) inbound.NarratorPort {
	return &narrator{
		logger:      logger,
		synthesizer: synthesizer,
		sink:        sink,
	}
}

func (n *narrator) Narrate(ctx context.Context, text string) (domain.AudioArtifact, error) {
	if strings.TrimSpace(text) == "" {
		return domain.AudioArtifact{}, domain.NewInvalidInput("Text is required for narration")
	}

	audio, err := n.synthesizer.Synthesize(ctx, text)
	if err != nil {
		n.logger.Error(err, "Failed to synthesize narration")
		return domain.AudioArtifact{}, domain.AsRequestError(err)
	}

	artifact, err := n.sink.Store(ctx, audio)
	if err != nil {
		n.logger.Error(err, "Failed to store narration audio")
		return domain.AudioArtifact{}, domain.AsRequestError(err)
	}

	return artifact, nil
}
