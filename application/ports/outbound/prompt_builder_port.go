package outbound

import "story-voice-service/domain"

type PromptBuilderPort interface {
	Build(req domain.StoryRequest) (string, error)
}
