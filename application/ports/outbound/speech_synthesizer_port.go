package outbound

import "context"

type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
