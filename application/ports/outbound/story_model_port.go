package outbound

import (
	"context"
	"story-voice-service/domain"
)

// StoryModelPort is the narrow contract over the external generative-text
// service: one prompt in, one parsed story out, a single attempt per call.
type StoryModelPort interface {
	GenerateStory(ctx context.Context, prompt string) (domain.StoryDocument, error)
}
